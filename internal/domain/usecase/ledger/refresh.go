package ledger

import (
	"context"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
)

// RefreshMonthly adds the configured monthly amount when a calendar month
// has elapsed since the last refresh baseline. The gate is re-checked under
// the row lock so two concurrent events cannot both apply the same refresh.
// Returns the balance and whether a refresh was applied.
func (u *UseCase) RefreshMonthly(ctx context.Context, memberID uint64, isPaid bool) (int64, bool, error) {
	amount := u.cfg.MonthlyFor(isPaid)

	var balance int64
	applied := false
	err := u.withLockedAccount(ctx, memberID, "monthly_refresh", false,
		func(txCtx context.Context, account *entity.CreditAccount) error {
			if !account.RefreshDue(u.timeProvider) {
				balance = account.Balance
				return nil
			}

			account.MarkRefreshed(u.timeProvider)
			var applyErr error
			balance, applyErr = u.applyAndRecord(txCtx, account, amount, entity.ChangeMonthlyRefresh, "monthly refresh")
			if applyErr != nil {
				return applyErr
			}
			applied = true
			return nil
		})
	if err != nil {
		return 0, false, err
	}

	if applied {
		u.logger.Info("Monthly credits refreshed", map[string]any{
			"member_id": memberID,
			"is_paid":   isPaid,
			"amount":    amount,
			"balance":   balance,
		})
	}
	return balance, applied, nil
}
