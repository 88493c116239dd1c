package reconcile

import (
	"context"
	"errors"
	"time"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/domain/port/external"
	"github.com/lunarbyte-dev/member-credits/internal/domain/usecase/ledger"
	"github.com/lunarbyte-dev/member-credits/internal/domain/usecase/member"
	"github.com/samber/lo"
)

// tagRemovalTimeout bounds each best-effort removal call so a slow platform
// API cannot stall the response
const tagRemovalTimeout = 10 * time.Second

// Result is the enriched outcome of one authenticate-and-reconcile event
type Result struct {
	Member        *entity.Member
	Balance       int64
	IsNewUser     bool
	ProcessedTags []string
	// CreditsDegraded flags that a ledger step failed after authentication
	// succeeded; the balance is a fallback, not the committed state.
	CreditsDegraded bool
}

// Reconciler drives the per-authentication-event state machine: directory
// upsert, classification, ledger operations in fixed order, then best-effort
// purchase tag removal against the platform.
type Reconciler struct {
	directory    *member.Directory
	ledger       *ledger.UseCase
	classifier   *entity.TagClassifier
	provider     external.IdentityProvider
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewReconciler creates the reconciliation orchestrator
func NewReconciler(
	directory *member.Directory,
	ledgerUC *ledger.UseCase,
	classifier *entity.TagClassifier,
	provider external.IdentityProvider,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Reconciler {
	return &Reconciler{
		directory:    directory,
		ledger:       ledgerUC,
		classifier:   classifier,
		provider:     provider,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Authenticate runs the full authenticate-and-reconcile flow. An upstream
// authentication failure aborts before any local mutation. Ledger failures
// after successful authentication degrade the response instead of failing
// it: the member still gets in, with a fallback balance and the degraded
// flag set.
func (r *Reconciler) Authenticate(ctx context.Context, hint external.AuthHint) (*Result, error) {
	auth, err := r.provider.Authenticate(ctx, hint)
	if err != nil {
		return nil, err
	}

	rawProfile := auth.RawProfile
	if fetched, fetchErr := r.provider.FetchProfile(ctx, auth.AccessToken); fetchErr == nil {
		rawProfile = fetched
	} else {
		r.logger.Warn("Profile fetch failed, using auth response profile", map[string]any{
			"external_id": auth.ExternalMemberID,
			"error":       fetchErr.Error(),
		})
	}

	tags := entity.NormalizeTags(rawProfile["tags"])
	classification := r.classifier.Classify(tags)
	profile := buildProfile(auth.ExternalMemberID, rawProfile, tags, classification.IsPaid)

	upsert, err := r.directory.Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Member:    upsert.Member,
		IsNewUser: upsert.IsNewlyCreated,
	}
	r.reconcileCredits(ctx, upsert, classification, result)

	return result, nil
}

// reconcileCredits applies the ledger state machine for one event. Any
// ledger failure aborts the remaining steps but keeps already-committed
// ones; the result is marked degraded.
func (r *Reconciler) reconcileCredits(
	ctx context.Context,
	upsert *member.UpsertResult,
	classification entity.TagClassification,
	result *Result,
) {
	memberID := upsert.Member.ID

	hasAccount := true
	account, err := r.ledger.GetAccount(ctx, memberID)
	if err != nil {
		if !errors.Is(err, errs.ErrAccountNotFound) {
			r.degrade(result, "account_lookup", err)
			return
		}
		hasAccount = false
	} else {
		result.Balance = account.Balance
	}

	if !hasAccount || upsert.IsNewlyCreated {
		// A brand-new member gets the opening grant and nothing else from
		// this branch; refresh and bonus checks are for returning members.
		balance, grantErr := r.ledger.GrantInitial(ctx, memberID, upsert.Member.IsPaid)
		if grantErr != nil {
			r.degrade(result, "grant_initial", grantErr)
			return
		}
		result.Balance = balance
		r.metrics.RecordReconcile(coreport.ReconcilePathInitialGrant)
	} else {
		if !upsert.Previous.IsPaid && upsert.Member.IsPaid {
			balance, bonusErr := r.ledger.AwardUpgradeBonus(ctx, memberID)
			if bonusErr != nil {
				r.degrade(result, "upgrade_bonus", bonusErr)
				return
			}
			result.Balance = balance
			r.metrics.RecordReconcile(coreport.ReconcilePathUpgradeBonus)
		}

		balance, applied, refreshErr := r.ledger.RefreshMonthly(ctx, memberID, upsert.Member.IsPaid)
		if refreshErr != nil {
			r.degrade(result, "monthly_refresh", refreshErr)
			return
		}
		result.Balance = balance
		if applied {
			r.metrics.RecordReconcile(coreport.ReconcilePathRefresh)
		}
	}

	// Purchases are a separate economic event; they settle regardless of
	// which grant/refresh branch ran.
	if len(classification.Purchases) == 0 {
		return
	}
	balance, settleErr := r.ledger.SettlePurchases(ctx, memberID, classification.Purchases)
	if settleErr != nil {
		r.degrade(result, "settle_purchases", settleErr)
		return
	}
	result.Balance = balance
	result.ProcessedTags = lo.Map(classification.Purchases, func(p entity.PurchaseTag, _ int) string {
		return p.Tag
	})
	r.metrics.RecordReconcile(coreport.ReconcilePathPurchase)

	// Settlement is committed; removal failures are logged and counted,
	// never rolled back.
	r.removePurchaseTags(ctx, upsert.Member.Email, classification.Purchases)
}

// removePurchaseTags removes each settled tag from the platform so it is
// not settled again on the next authentication. Best-effort only.
func (r *Reconciler) removePurchaseTags(ctx context.Context, email string, purchases []entity.PurchaseTag) {
	for _, purchase := range purchases {
		removalCtx, cancel := r.timeProvider.WithTimeout(context.WithoutCancel(ctx), tagRemovalTimeout)

		tagID, found, err := r.provider.ResolveTagID(removalCtx, purchase.Tag)
		switch {
		case err != nil:
			r.metrics.RecordTagRemoval(coreport.RemovalOutcomeResolveError)
			r.logger.Warn("Purchase tag resolution failed", map[string]any{
				"tag":   purchase.Tag,
				"email": email,
				"error": err.Error(),
			})
		case !found:
			r.metrics.RecordTagRemoval(coreport.RemovalOutcomeNotFound)
			r.logger.Warn("Purchase tag not found on platform", map[string]any{
				"tag":   purchase.Tag,
				"email": email,
			})
		default:
			if removeErr := r.provider.RemoveTag(removalCtx, email, tagID); removeErr != nil {
				r.metrics.RecordTagRemoval(coreport.RemovalOutcomeRemoveError)
				r.logger.Warn("Purchase tag removal failed", map[string]any{
					"tag":    purchase.Tag,
					"tag_id": tagID,
					"email":  email,
					"error":  removeErr.Error(),
				})
			} else {
				r.metrics.RecordTagRemoval(coreport.RemovalOutcomeRemoved)
			}
		}
		cancel()
	}
}

// degrade marks the result as credit-degraded and records why. The
// authentication itself still succeeds.
func (r *Reconciler) degrade(result *Result, step string, err error) {
	result.CreditsDegraded = true
	r.metrics.RecordReconcile(coreport.ReconcilePathDegraded)
	r.logger.Error("Credit reconciliation degraded", map[string]any{
		"member_id": result.Member.ID,
		"step":      step,
		"error":     err.Error(),
	})
}

// buildProfile maps the platform's raw profile payload onto the canonical
// member profile. Missing fields default to empty values.
func buildProfile(externalID string, raw map[string]any, tags []string, isPaid bool) entity.MemberProfile {
	return entity.MemberProfile{
		ExternalID:  externalID,
		Email:       stringField(raw, "email"),
		Name:        stringField(raw, "name"),
		AvatarURL:   stringField(raw, "avatar_url"),
		IsAdmin:     boolField(raw, "is_admin"),
		IsModerator: boolField(raw, "is_moderator"),
		IsPaid:      isPaid,
		Tags:        tags,
	}
}

func stringField(raw map[string]any, key string) string {
	if raw == nil {
		return ""
	}
	s, _ := raw[key].(string)
	return s
}

func boolField(raw map[string]any, key string) bool {
	if raw == nil {
		return false
	}
	b, _ := raw[key].(bool)
	return b
}
