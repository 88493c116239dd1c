package ledger

import (
	"context"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
)

// AdminBonus credits an arbitrary amount outside the authentication flow,
// recorded with the administrative change type.
func (u *UseCase) AdminBonus(ctx context.Context, memberID uint64, amount int64, note string) (int64, error) {
	if amount <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	var balance int64
	err := u.withLockedAccount(ctx, memberID, "admin_bonus", false,
		func(txCtx context.Context, account *entity.CreditAccount) error {
			var applyErr error
			balance, applyErr = u.applyAndRecord(txCtx, account, amount, entity.ChangeAdminBonus, note)
			return applyErr
		})
	if err != nil {
		return 0, err
	}

	u.logger.Info("Admin bonus applied", map[string]any{
		"member_id": memberID,
		"amount":    amount,
		"balance":   balance,
	})
	return balance, nil
}

// AdminForceRefresh applies the monthly amount immediately, ignoring the
// refresh gate, and advances the baseline. Recorded as admin_refresh.
func (u *UseCase) AdminForceRefresh(ctx context.Context, memberID uint64, isPaid bool) (int64, error) {
	amount := u.cfg.MonthlyFor(isPaid)

	var balance int64
	err := u.withLockedAccount(ctx, memberID, "admin_refresh", false,
		func(txCtx context.Context, account *entity.CreditAccount) error {
			account.MarkRefreshed(u.timeProvider)
			var applyErr error
			balance, applyErr = u.applyAndRecord(txCtx, account, amount, entity.ChangeAdminRefresh, "forced refresh")
			return applyErr
		})
	if err != nil {
		return 0, err
	}

	u.logger.Info("Admin refresh applied", map[string]any{
		"member_id": memberID,
		"is_paid":   isPaid,
		"amount":    amount,
		"balance":   balance,
	})
	return balance, nil
}
