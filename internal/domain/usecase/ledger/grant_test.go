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

func TestGrantInitial(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Creates the account and grants the free tier amount", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).
			Return(nil, errs.ErrAccountNotFound).Once()
		f.accounts.EXPECT().Create(txCtx, mock.MatchedBy(func(a *entity.CreditAccount) bool {
			return a.MemberID == 7 && a.Balance == 0
		})).Return(nil).Once()
		f.accounts.EXPECT().Update(txCtx, mock.MatchedBy(func(a *entity.CreditAccount) bool {
			return a.MemberID == 7 && a.Balance == 100
		})).Return(nil).Once()
		f.history.EXPECT().Append(txCtx, mock.MatchedBy(func(e *entity.CreditHistoryEntry) bool {
			return e.MemberID == 7 &&
				e.ChangeAmount == 100 &&
				e.ChangeType == entity.ChangeInitialGrant &&
				e.BalanceAfter == 100 &&
				e.Note == "free tier"
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		balance, err := f.uc.GrantInitial(ctx, 7, false)

		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})

	t.Run("Grants the paid tier amount to an existing empty account", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{MemberID: 7, Balance: 0, LastRefreshedAt: fixedTime}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, account).Return(nil).Once()
		f.history.EXPECT().Append(txCtx, mock.MatchedBy(func(e *entity.CreditHistoryEntry) bool {
			return e.ChangeAmount == 500 && e.BalanceAfter == 500 && e.Note == "paid tier"
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		balance, err := f.uc.GrantInitial(ctx, 7, true)

		require.NoError(t, err)
		assert.Equal(t, int64(500), balance)
	})

	t.Run("Regrant at the tier amount writes nothing", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{MemberID: 7, Balance: 100, LastRefreshedAt: fixedTime}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		balance, err := f.uc.GrantInitial(ctx, 7, false)

		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
		f.accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("Regrant tops a partial balance up to the tier amount", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{MemberID: 7, Balance: 25, LastRefreshedAt: fixedTime}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, mock.MatchedBy(func(a *entity.CreditAccount) bool {
			return a.Balance == 100
		})).Return(nil).Once()
		f.history.EXPECT().Append(txCtx, mock.MatchedBy(func(e *entity.CreditHistoryEntry) bool {
			return e.ChangeAmount == 75 &&
				e.ChangeType == entity.ChangeInitialGrant &&
				e.BalanceAfter == 100
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		balance, err := f.uc.GrantInitial(ctx, 7, false)

		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})

	t.Run("Balance above the tier amount is never clawed back", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{MemberID: 7, Balance: 150, LastRefreshedAt: fixedTime}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		balance, err := f.uc.GrantInitial(ctx, 7, false)

		require.NoError(t, err)
		assert.Equal(t, int64(150), balance)
		f.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("Zero member ID never opens a transaction", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)

		balance, err := f.uc.GrantInitial(ctx, 0, false)

		assert.Equal(t, int64(0), balance)
		assert.ErrorIs(t, err, errs.ErrInvalidMemberID)
	})

	t.Run("Rolls back when the history append fails", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{MemberID: 7, Balance: 0}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, account).Return(nil).Once()
		appendErr := errors.New("disk full")
		f.history.EXPECT().Append(txCtx, mock.Anything).Return(appendErr).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		balance, err := f.uc.GrantInitial(ctx, 7, false)

		assert.Equal(t, int64(0), balance)
		assert.True(t, errs.IsPersistenceError(err))
		assert.ErrorIs(t, err, appendErr)
	})

	t.Run("Begin failure surfaces as a ledger error", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		beginErr := errors.New("connection refused")
		f.uow.EXPECT().Begin(ctx).Return(nil, beginErr).Once()

		_, err := f.uc.GrantInitial(ctx, 7, false)

		assert.True(t, errs.IsPersistenceError(err))
		assert.ErrorIs(t, err, beginErr)
	})
}

func TestAwardUpgradeBonus(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Adds the paid and free initial difference", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)
		account := &entity.CreditAccount{MemberID: 7, Balance: 25}

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, account).Return(nil).Once()
		f.history.EXPECT().Append(txCtx, mock.MatchedBy(func(e *entity.CreditHistoryEntry) bool {
			return e.ChangeAmount == 400 &&
				e.ChangeType == entity.ChangeUpgradeBonus &&
				e.BalanceAfter == 425 &&
				e.Note == "free to paid upgrade"
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		balance, err := f.uc.AwardUpgradeBonus(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(425), balance)
	})

	t.Run("Missing account rolls back without creating one", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		txCtx := f.expectBegin(ctx)

		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).
			Return(nil, errs.ErrAccountNotFound).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.uc.AwardUpgradeBonus(ctx, 7)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}
