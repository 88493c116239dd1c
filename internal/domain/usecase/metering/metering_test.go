package metering

import (
	"context"
	"testing"
	"time"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	"github.com/lunarbyte-dev/member-credits/internal/domain/usecase/ledger"
	coremocks "github.com/lunarbyte-dev/member-credits/mocks/port/core"
	persistencemocks "github.com/lunarbyte-dev/member-credits/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

type meteringFixture struct {
	uow      *persistencemocks.MockUnitOfWork
	accounts *persistencemocks.MockCreditAccountRepository
	history  *persistencemocks.MockCreditHistoryRepository
	actions  *persistencemocks.MockActionRepository
	logger   *coremocks.MockLogger
	uc       *UseCase
}

func newMeteringFixture(t *testing.T, fixedTime time.Time) *meteringFixture {
	f := &meteringFixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		accounts: persistencemocks.NewMockCreditAccountRepository(t),
		history:  persistencemocks.NewMockCreditHistoryRepository(t),
		actions:  persistencemocks.NewMockActionRepository(t),
		logger:   coremocks.NewMockLogger(t),
	}

	f.uow.EXPECT().GetCreditAccountRepository(mock.Anything).Return(f.accounts).Maybe()
	f.uow.EXPECT().GetCreditHistoryRepository(mock.Anything).Return(f.history).Maybe()
	f.uow.EXPECT().GetActionRepository(mock.Anything).Return(f.actions).Maybe()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	ledgerUC := ledger.NewUseCase(f.uow, mockTime, f.logger, ledger.Config{
		InitialFree: 100,
		InitialPaid: 500,
		MonthlyFree: 50,
		MonthlyPaid: 300,
	})
	f.uc = NewUseCase(ledgerUC, f.logger)
	return f
}

func TestSpend(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Successful spend returns the action and remaining balance", func(t *testing.T) {
		f := newMeteringFixture(t, fixedTime)
		txCtx := context.WithValue(ctx, txKey{}, "tx")
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		account := &entity.CreditAccount{MemberID: 7, Balance: 100}
		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, mock.Anything).Return(nil).Once()
		f.actions.EXPECT().Create(txCtx, mock.Anything).
			Run(func(_ context.Context, a *entity.Action) {
				a.ID = 42
			}).Return(nil).Once()
		f.history.EXPECT().Append(txCtx, mock.Anything).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		result, err := f.uc.Spend(ctx, 7, "generate_report", 30, map[string]any{"pages": 3})

		require.NoError(t, err)
		assert.Equal(t, uint64(42), result.Action.ID)
		assert.Equal(t, int64(70), result.RemainingBalance)
	})

	t.Run("Empty action type rejected before the ledger", func(t *testing.T) {
		f := newMeteringFixture(t, fixedTime)

		result, err := f.uc.Spend(ctx, 7, "", 30, nil)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Insufficient balance propagates the detailed error", func(t *testing.T) {
		f := newMeteringFixture(t, fixedTime)
		txCtx := context.WithValue(ctx, txKey{}, "tx")
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		account := &entity.CreditAccount{MemberID: 7, Balance: 5}
		f.accounts.EXPECT().GetByMemberIDForUpdate(txCtx, uint64(7)).Return(account, nil).Once()
		f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		result, err := f.uc.Spend(ctx, 7, "generate_report", 30, nil)

		assert.Nil(t, result)
		assert.True(t, errs.IsInsufficientCreditsError(err))
	})
}

func TestBalanceAndReads(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Balance reads through the ledger", func(t *testing.T) {
		f := newMeteringFixture(t, fixedTime)
		account := &entity.CreditAccount{MemberID: 7, Balance: 120}
		f.accounts.EXPECT().GetByMemberID(ctx, uint64(7)).Return(account, nil).Once()

		got, err := f.uc.Balance(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(120), got.Balance)
	})

	t.Run("History and actions pass pagination through", func(t *testing.T) {
		f := newMeteringFixture(t, fixedTime)
		f.history.EXPECT().ListByMember(ctx, uint64(7), 20, 0).
			Return([]*entity.CreditHistoryEntry{{MemberID: 7}}, nil).Once()
		f.actions.EXPECT().ListByMember(ctx, uint64(7), 20, 20).
			Return([]*entity.Action{{MemberID: 7}}, nil).Once()

		entries, err := f.uc.History(ctx, 7, 20, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 1)

		actions, err := f.uc.Actions(ctx, 7, 20, 20)
		require.NoError(t, err)
		assert.Len(t, actions, 1)
	})
}
