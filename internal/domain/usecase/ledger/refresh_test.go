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

func TestRefreshMonthly(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Applies the free amount when a month has elapsed", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{
			MemberID:        7,
			Balance:         10,
			LastRefreshedAt: fixedTime.AddDate(0, -1, -2),
		}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, mock.MatchedBy(func(a *entity.CreditAccount) bool {
			// The baseline advances in the same transaction as the credit
			return a.Balance == 60 && a.LastRefreshedAt.Equal(fixedTime)
		})).Return(nil).Once()
		f.history.EXPECT().Append(txCtx, mock.MatchedBy(func(e *entity.CreditHistoryEntry) bool {
			return e.ChangeAmount == 50 &&
				e.ChangeType == entity.ChangeMonthlyRefresh &&
				e.BalanceAfter == 60 &&
				e.Note == "monthly refresh"
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		balance, applied, err := f.uc.RefreshMonthly(ctx, 7, false)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, int64(60), balance)
	})

	t.Run("Applies the paid amount for paid members", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{
			MemberID:        7,
			Balance:         0,
			LastRefreshedAt: fixedTime.AddDate(0, -2, 0),
		}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, account).Return(nil).Once()
		f.history.EXPECT().Append(txCtx, mock.MatchedBy(func(e *entity.CreditHistoryEntry) bool {
			return e.ChangeAmount == 300 && e.BalanceAfter == 300
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		balance, applied, err := f.uc.RefreshMonthly(ctx, 7, true)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, int64(300), balance)
	})

	t.Run("Skips when the gate re-checked under the lock is not due", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{
			MemberID:        7,
			Balance:         42,
			LastRefreshedAt: fixedTime.AddDate(0, 0, -10),
		}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		balance, applied, err := f.uc.RefreshMonthly(ctx, 7, false)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, int64(42), balance)
		// No update, no history entry, no log line for a skipped refresh
		f.accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("Rolls back when the balance update fails", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{
			MemberID:        7,
			Balance:         10,
			LastRefreshedAt: fixedTime.AddDate(0, -2, 0),
		}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		updateErr := errors.New("lock timeout")
		f.accounts.EXPECT().Update(txCtx, account).Return(updateErr).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, applied, err := f.uc.RefreshMonthly(ctx, 7, false)

		assert.False(t, applied)
		assert.True(t, errs.IsPersistenceError(err))
	})
}
