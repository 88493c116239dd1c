package ledger

import (
	"context"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
)

// Debit deducts credits for one action. The balance check happens under the
// row lock, so two concurrent debits whose combined cost exceeds the balance
// can never both pass. On success exactly one action row and one history
// entry are written in the same transaction; a rejected debit writes
// nothing.
func (u *UseCase) Debit(
	ctx context.Context,
	memberID uint64,
	cost int64,
	actionType string,
	metadata map[string]any,
) (*entity.Action, int64, error) {
	if cost <= 0 {
		return nil, 0, errs.ErrInvalidAmount
	}

	var action *entity.Action
	var balance int64
	err := u.withLockedAccount(ctx, memberID, "debit", false,
		func(txCtx context.Context, account *entity.CreditAccount) error {
			if !account.CanDebit(cost) {
				return errs.NewInsufficientCreditsError(memberID, cost, account.Balance)
			}

			var applyErr error
			balance, applyErr = account.Apply(-cost, u.timeProvider)
			if applyErr != nil {
				return applyErr
			}
			if updErr := u.uow.GetCreditAccountRepository(txCtx).Update(txCtx, account); updErr != nil {
				return errs.NewLedgerError(memberID, "debit", updErr)
			}

			newAction, actionErr := entity.NewAction(memberID, actionType, cost, metadata, u.timeProvider)
			if actionErr != nil {
				return actionErr
			}
			if createErr := u.uow.GetActionRepository(txCtx).Create(txCtx, newAction); createErr != nil {
				return errs.NewLedgerError(memberID, "debit", createErr)
			}

			entry := entity.NewCreditHistoryEntry(
				memberID, -cost, entity.ChangeActionCost, balance, actionType, u.timeProvider).
				WithAction(newAction.ID)
			if appendErr := u.uow.GetCreditHistoryRepository(txCtx).Append(txCtx, entry); appendErr != nil {
				return errs.NewLedgerError(memberID, "debit", appendErr)
			}

			action = newAction
			return nil
		})
	if err != nil {
		if errs.IsInsufficientCreditsError(err) {
			u.logger.Warn("Debit rejected for insufficient credits", map[string]any{
				"member_id":   memberID,
				"action_type": actionType,
				"cost":        cost,
			})
		}
		return nil, 0, err
	}

	u.logger.Info("Credits debited", map[string]any{
		"member_id":   memberID,
		"action_type": actionType,
		"cost":        cost,
		"balance":     balance,
	})
	return action, balance, nil
}
