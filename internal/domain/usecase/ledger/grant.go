package ledger

import (
	"context"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
)

// GrantInitial sets a member's balance to the configured tier amount,
// creating the account when none exists. Idempotent in effect: the new-member
// grace window can route a second authentication through here, so the grant
// converges on the target instead of stacking. Credits already above the
// target (a purchase settled in the same window) are never clawed back.
func (u *UseCase) GrantInitial(ctx context.Context, memberID uint64, isPaid bool) (int64, error) {
	target := u.cfg.InitialFor(isPaid)
	note := "free tier"
	if isPaid {
		note = "paid tier"
	}

	var balance int64
	applied := false
	err := u.withLockedAccount(ctx, memberID, "grant_initial", true,
		func(txCtx context.Context, account *entity.CreditAccount) error {
			delta := target - account.Balance
			if delta <= 0 {
				balance = account.Balance
				return nil
			}
			var applyErr error
			balance, applyErr = u.applyAndRecord(txCtx, account, delta, entity.ChangeInitialGrant, note)
			if applyErr != nil {
				return applyErr
			}
			applied = true
			return nil
		})
	if err != nil {
		return 0, err
	}

	if applied {
		u.logger.Info("Initial credits granted", map[string]any{
			"member_id": memberID,
			"is_paid":   isPaid,
			"target":    target,
			"balance":   balance,
		})
	}
	return balance, nil
}

// AwardUpgradeBonus adds the paid/free initial difference once per detected
// free-to-paid transition. Transition detection lives in the orchestrator.
func (u *UseCase) AwardUpgradeBonus(ctx context.Context, memberID uint64) (int64, error) {
	bonus := u.cfg.UpgradeBonus()

	var balance int64
	err := u.withLockedAccount(ctx, memberID, "upgrade_bonus", false,
		func(txCtx context.Context, account *entity.CreditAccount) error {
			var applyErr error
			balance, applyErr = u.applyAndRecord(txCtx, account, bonus, entity.ChangeUpgradeBonus, "free to paid upgrade")
			return applyErr
		})
	if err != nil {
		return 0, err
	}

	u.logger.Info("Upgrade bonus awarded", map[string]any{
		"member_id": memberID,
		"bonus":     bonus,
		"balance":   balance,
	})
	return balance, nil
}
