package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClassifier() *TagClassifier {
	return NewTagClassifier([]string{"Paid", " premium "}, 1, 10000)
}

func TestClassifyPurchaseTags(t *testing.T) {
	classifier := newTestClassifier()

	t.Run("Qualifying purchase tags", func(t *testing.T) {
		testCases := []struct {
			tag      string
			expected int64
		}{
			{"1", 1},
			{"50", 50},
			{"$50", 50},
			{"10000", 10000},
			{" $75 ", 75},
		}

		for _, tc := range testCases {
			t.Run(tc.tag, func(t *testing.T) {
				result := classifier.Classify([]string{tc.tag})
				assert.Len(t, result.Purchases, 1)
				assert.Equal(t, tc.tag, result.Purchases[0].Tag)
				assert.Equal(t, tc.expected, result.Purchases[0].Credits)
			})
		}
	})

	t.Run("Non-qualifying tags", func(t *testing.T) {
		testCases := []struct {
			tag         string
			description string
		}{
			{"0", "Below minimum"},
			{"10001", "Above maximum"},
			{"$", "Currency symbol only"},
			{"50x", "Trailing garbage"},
			{"x50", "Leading garbage"},
			{"$$50", "Double currency symbol"},
			{"50.00", "Decimal amount"},
			{"-50", "Negative amount"},
			{"99999999999999999999", "Overflows int64"},
			{"", "Empty"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				result := classifier.Classify([]string{tc.tag})
				assert.Empty(t, result.Purchases)
			})
		}
	})

	t.Run("Collects all qualifying tags in order", func(t *testing.T) {
		result := classifier.Classify([]string{"$50", "member", "100", "10001"})
		assert.Len(t, result.Purchases, 2)
		assert.Equal(t, "$50", result.Purchases[0].Tag)
		assert.Equal(t, int64(50), result.Purchases[0].Credits)
		assert.Equal(t, "100", result.Purchases[1].Tag)
		assert.Equal(t, int64(100), result.Purchases[1].Credits)
	})

	t.Run("Deterministic for any given input", func(t *testing.T) {
		tags := []string{"Premium", "$50", "100"}
		first := classifier.Classify(tags)
		second := classifier.Classify(tags)
		assert.Equal(t, first, second)
	})
}

func TestClassifyPaidStatus(t *testing.T) {
	classifier := newTestClassifier()

	t.Run("Keyword match is case-insensitive substring", func(t *testing.T) {
		testCases := []struct {
			tags     []string
			expected bool
		}{
			{[]string{"paid"}, true},
			{[]string{"PAID"}, true},
			{[]string{"Paid Member"}, true},
			{[]string{"premium-tier"}, true},
			{[]string{"free"}, false},
			{[]string{"member"}, false},
			{nil, false},
		}

		for _, tc := range testCases {
			result := classifier.Classify(tc.tags)
			assert.Equal(t, tc.expected, result.IsPaid, "tags %v", tc.tags)
		}
	})

	t.Run("Paid and purchase tags coexist", func(t *testing.T) {
		result := classifier.Classify([]string{"Premium", "$200"})
		assert.True(t, result.IsPaid)
		assert.Len(t, result.Purchases, 1)
		assert.Equal(t, int64(200), result.Purchases[0].Credits)
	})

	t.Run("Blank keywords are dropped at construction", func(t *testing.T) {
		c := NewTagClassifier([]string{"", "  ", "vip"}, 1, 100)
		assert.False(t, c.Classify([]string{"member"}).IsPaid)
		assert.True(t, c.Classify([]string{"VIP list"}).IsPaid)
	})
}

func TestNormalizeTags(t *testing.T) {
	testCases := []struct {
		name     string
		raw      any
		expected []string
	}{
		{"Nil payload", nil, nil},
		{"Comma-separated string", "paid, $50 ,premium", []string{"paid", "$50", "premium"}},
		{"String with empty segments", "paid,, ,", []string{"paid"}},
		{"String slice", []string{" paid ", "$50"}, []string{"paid", "$50"}},
		{"Interface slice of strings", []any{"paid", " $50 "}, []string{"paid", "$50"}},
		{
			"Interface slice of tag objects",
			[]any{
				map[string]any{"name": "paid"},
				map[string]any{"label": "$50"},
				map[string]any{"tag": "premium"},
			},
			[]string{"paid", "$50", "premium"},
		},
		{
			"Objects without a usable field are skipped",
			[]any{map[string]any{"id": 3}, map[string]any{"name": "  "}, "kept"},
			[]string{"kept"},
		},
		{"Non-string scalars are skipped", []any{42, true, "paid"}, []string{"paid"}},
		{"Unsupported payload type", 42, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeTags(tc.raw))
		})
	}
}

func TestTotalPurchaseCredits(t *testing.T) {
	assert.Equal(t, int64(0), TotalPurchaseCredits(nil))
	assert.Equal(t, int64(150), TotalPurchaseCredits([]PurchaseTag{
		{Tag: "$50", Credits: 50},
		{Tag: "100", Credits: 100},
	}))
}
