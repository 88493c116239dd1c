package entity

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Purchase tag pattern: optional leading "$", then digits, nothing else
var purchaseTagPattern = regexp.MustCompile(`^\$?(\d+)$`)

// PurchaseTag is one qualifying purchase tag and the credits it grants
type PurchaseTag struct {
	Tag     string
	Credits int64
}

// TagClassification is the result of classifying a member's tag list
type TagClassification struct {
	IsPaid    bool
	Purchases []PurchaseTag
}

// TagClassifier derives paid status and purchase amounts from raw tags.
// Pure: no I/O, no state beyond configuration.
type TagClassifier struct {
	paidKeywords []string
	minPurchase  int64
	maxPurchase  int64
}

// NewTagClassifier creates a classifier with lowercased paid keywords and
// the accepted purchase amount range, inclusive on both ends.
func NewTagClassifier(paidKeywords []string, minPurchase, maxPurchase int64) *TagClassifier {
	keywords := lo.FilterMap(paidKeywords, func(k string, _ int) (string, bool) {
		k = strings.ToLower(strings.TrimSpace(k))
		return k, k != ""
	})
	return &TagClassifier{
		paidKeywords: keywords,
		minPurchase:  minPurchase,
		maxPurchase:  maxPurchase,
	}
}

// NormalizeTags flattens the heterogeneous tag payloads the platform sends
// (comma-separated string, list of strings, list of tag objects) into a
// plain string sequence. Malformed or absent fields become an empty list.
func NormalizeTags(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		parts := strings.Split(v, ",")
		return lo.FilterMap(parts, func(p string, _ int) (string, bool) {
			p = strings.TrimSpace(p)
			return p, p != ""
		})
	case []string:
		return lo.FilterMap(v, func(t string, _ int) (string, bool) {
			t = strings.TrimSpace(t)
			return t, t != ""
		})
	case []any:
		return lo.FilterMap(v, func(item any, _ int) (string, bool) {
			switch tag := item.(type) {
			case string:
				tag = strings.TrimSpace(tag)
				return tag, tag != ""
			case map[string]any:
				for _, key := range []string{"name", "label", "tag"} {
					if s, ok := tag[key].(string); ok && strings.TrimSpace(s) != "" {
						return strings.TrimSpace(s), true
					}
				}
				return "", false
			default:
				return "", false
			}
		})
	default:
		return nil
	}
}

// Classify turns a normalized tag list into a paid/free classification plus
// the purchase amounts carried by qualifying tags. Deterministic for any
// given input: tags are inspected in order and all qualifying purchase tags
// are collected.
func (c *TagClassifier) Classify(tags []string) TagClassification {
	result := TagClassification{}

	for _, tag := range tags {
		lowered := strings.ToLower(tag)
		for _, keyword := range c.paidKeywords {
			if strings.Contains(lowered, keyword) {
				result.IsPaid = true
				break
			}
		}

		if credits, ok := c.purchaseAmount(tag); ok {
			result.Purchases = append(result.Purchases, PurchaseTag{
				Tag:     tag,
				Credits: credits,
			})
		}
	}

	return result
}

// purchaseAmount extracts the credit amount from a purchase tag.
// Out-of-range values are skipped silently, not treated as errors.
func (c *TagClassifier) purchaseAmount(tag string) (int64, bool) {
	match := purchaseTagPattern.FindStringSubmatch(strings.TrimSpace(tag))
	if match == nil {
		return 0, false
	}
	amount, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		// Digits too long for int64; outside the accepted range anyway
		return 0, false
	}
	if amount < c.minPurchase || amount > c.maxPurchase {
		return 0, false
	}
	return amount, true
}

// TotalPurchaseCredits sums the credits across qualifying purchase tags
func TotalPurchaseCredits(purchases []PurchaseTag) int64 {
	return lo.SumBy(purchases, func(p PurchaseTag) int64 { return p.Credits })
}
