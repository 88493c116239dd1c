package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettlePurchases(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	purchases := []entity.PurchaseTag{
		{Tag: "$50", Credits: 50},
		{Tag: "100", Credits: 100},
	}

	t.Run("Empty batch returns the current balance without a transaction", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		account := &entity.CreditAccount{MemberID: 7, Balance: 120}
		f.accounts.EXPECT().GetByMemberID(ctx, uint64(7)).Return(account, nil).Once()

		balance, err := f.uc.SettlePurchases(ctx, 7, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(120), balance)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Settles the batch with one delta and per-tag rows", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{MemberID: 7, Balance: 10}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, mock.MatchedBy(func(a *entity.CreditAccount) bool {
			return a.Balance == 160
		})).Return(nil).Once()

		// The per-tag history entries fold onto the committed balance
		var appended []*entity.CreditHistoryEntry
		f.history.EXPECT().Append(txCtx, mock.Anything).
			Run(func(_ context.Context, e *entity.CreditHistoryEntry) {
				appended = append(appended, e)
			}).Return(nil).Times(2)

		var audited []*entity.ProcessedPurchaseTag
		f.tagAudit.EXPECT().Create(txCtx, mock.Anything).
			Run(func(_ context.Context, tag *entity.ProcessedPurchaseTag) {
				audited = append(audited, tag)
			}).Return(nil).Times(2)

		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		balance, err := f.uc.SettlePurchases(ctx, 7, purchases)

		require.NoError(t, err)
		assert.Equal(t, int64(160), balance)

		require.Len(t, appended, 2)
		assert.Equal(t, "$50", appended[0].Note)
		assert.Equal(t, int64(50), appended[0].ChangeAmount)
		assert.Equal(t, int64(60), appended[0].BalanceAfter)
		assert.Equal(t, entity.ChangePurchase, appended[0].ChangeType)
		assert.Equal(t, "100", appended[1].Note)
		assert.Equal(t, int64(100), appended[1].ChangeAmount)
		assert.Equal(t, int64(160), appended[1].BalanceAfter)

		require.Len(t, audited, 2)
		assert.Equal(t, "$50", audited[0].Tag)
		assert.Equal(t, int64(50), audited[0].CreditsGranted)
		assert.Equal(t, "100", audited[1].Tag)
		assert.Equal(t, int64(100), audited[1].CreditsGranted)
	})

	t.Run("Rolls back the whole batch when one audit row fails", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{MemberID: 7, Balance: 10}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, mock.Anything).Return(nil).Once()
		f.history.EXPECT().Append(txCtx, mock.Anything).Return(nil).Once()
		auditErr := errors.New("duplicate key")
		f.tagAudit.EXPECT().Create(txCtx, mock.Anything).Return(auditErr).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		balance, err := f.uc.SettlePurchases(ctx, 7, purchases)

		assert.Equal(t, int64(0), balance)
		assert.True(t, errs.IsPersistenceError(err))
		assert.ErrorIs(t, err, auditErr)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Missing account rolls back", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).
			Return(nil, errs.ErrAccountNotFound).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.uc.SettlePurchases(ctx, 7, purchases)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}
