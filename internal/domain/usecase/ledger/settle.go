package ledger

import (
	"context"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
)

// SettlePurchases credits all qualifying purchase tags in one atomic batch:
// a single balance delta, one purchase history entry per tag, and one audit
// row per tag. If any write fails the whole batch rolls back and no partial
// credits or audit rows survive.
func (u *UseCase) SettlePurchases(ctx context.Context, memberID uint64, purchases []entity.PurchaseTag) (int64, error) {
	if len(purchases) == 0 {
		account, err := u.GetAccount(ctx, memberID)
		if err != nil {
			return 0, err
		}
		return account.Balance, nil
	}

	total := entity.TotalPurchaseCredits(purchases)
	if total <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	var balance int64
	err := u.withLockedAccount(ctx, memberID, "settle_purchases", false,
		func(txCtx context.Context, account *entity.CreditAccount) error {
			var applyErr error
			balance, applyErr = account.Apply(total, u.timeProvider)
			if applyErr != nil {
				return applyErr
			}
			if updErr := u.uow.GetCreditAccountRepository(txCtx).Update(txCtx, account); updErr != nil {
				return errs.NewLedgerError(memberID, "settle_purchases", updErr)
			}

			historyRepo := u.uow.GetCreditHistoryRepository(txCtx)
			tagRepo := u.uow.GetProcessedPurchaseTagRepository(txCtx)

			// One history entry per tag; the running fold across the batch
			// lands on the committed balance.
			running := balance - total
			for _, purchase := range purchases {
				running += purchase.Credits
				entry := entity.NewCreditHistoryEntry(
					memberID, purchase.Credits, entity.ChangePurchase, running,
					purchase.Tag, u.timeProvider)
				if appendErr := historyRepo.Append(txCtx, entry); appendErr != nil {
					return errs.NewLedgerError(memberID, "settle_purchases", appendErr)
				}

				audit := entity.NewProcessedPurchaseTag(memberID, purchase, u.timeProvider)
				if auditErr := tagRepo.Create(txCtx, audit); auditErr != nil {
					return errs.NewLedgerError(memberID, "settle_purchases", auditErr)
				}
			}
			return nil
		})
	if err != nil {
		return 0, err
	}

	u.logger.Info("Purchase tags settled", map[string]any{
		"member_id": memberID,
		"tags":      len(purchases),
		"credits":   total,
		"balance":   balance,
	})
	return balance, nil
}
