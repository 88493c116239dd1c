package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coremocks "github.com/lunarbyte-dev/member-credits/mocks/port/core"
	persistencemocks "github.com/lunarbyte-dev/member-credits/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

var testConfig = Config{
	InitialFree: 100,
	InitialPaid: 500,
	MonthlyFree: 50,
	MonthlyPaid: 300,
}

// ledgerFixture wires a use case against mocked persistence. Repository
// getters answer for any context so transactional and plain reads share the
// same mocks.
type ledgerFixture struct {
	uow      *persistencemocks.MockUnitOfWork
	accounts *persistencemocks.MockCreditAccountRepository
	history  *persistencemocks.MockCreditHistoryRepository
	actions  *persistencemocks.MockActionRepository
	tagAudit *persistencemocks.MockProcessedPurchaseTagRepository
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
	uc       *UseCase
}

func newLedgerFixture(t *testing.T, fixedTime time.Time) *ledgerFixture {
	f := &ledgerFixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		accounts: persistencemocks.NewMockCreditAccountRepository(t),
		history:  persistencemocks.NewMockCreditHistoryRepository(t),
		actions:  persistencemocks.NewMockActionRepository(t),
		tagAudit: persistencemocks.NewMockProcessedPurchaseTagRepository(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}

	f.uow.EXPECT().GetCreditAccountRepository(mock.Anything).Return(f.accounts).Maybe()
	f.uow.EXPECT().GetCreditHistoryRepository(mock.Anything).Return(f.history).Maybe()
	f.uow.EXPECT().GetActionRepository(mock.Anything).Return(f.actions).Maybe()
	f.uow.EXPECT().GetProcessedPurchaseTagRepository(mock.Anything).Return(f.tagAudit).Maybe()
	f.time.EXPECT().Now().Return(fixedTime).Maybe()

	f.uc = NewUseCase(f.uow, f.time, f.logger, testConfig)
	return f
}

// expectBegin registers a Begin expectation and returns the transactional
// context the mocked unit of work will hand out
func (f *ledgerFixture) expectBegin(ctx context.Context) context.Context {
	txCtx := context.WithValue(ctx, txKey{}, "tx")
	f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
	return txCtx
}

func TestConfigAmounts(t *testing.T) {
	assert.Equal(t, int64(400), testConfig.UpgradeBonus())
	assert.Equal(t, int64(100), testConfig.InitialFor(false))
	assert.Equal(t, int64(500), testConfig.InitialFor(true))
	assert.Equal(t, int64(50), testConfig.MonthlyFor(false))
	assert.Equal(t, int64(300), testConfig.MonthlyFor(true))
}

func TestGetAccount(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Returns the account without locking", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		account := &entity.CreditAccount{MemberID: 7, Balance: 120}
		f.accounts.EXPECT().GetByMemberID(ctx, uint64(7)).Return(account, nil).Once()

		got, err := f.uc.GetAccount(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, account, got)
	})

	t.Run("Zero member ID", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)

		got, err := f.uc.GetAccount(ctx, 0)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrInvalidMemberID)
	})

	t.Run("Missing account propagates", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.accounts.EXPECT().GetByMemberID(ctx, uint64(7)).Return(nil, errs.ErrAccountNotFound).Once()

		got, err := f.uc.GetAccount(ctx, 7)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestHistoryAndActions(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("History passes pagination through", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		entries := []*entity.CreditHistoryEntry{{MemberID: 7, ChangeAmount: 100}}
		f.history.EXPECT().ListByMember(ctx, uint64(7), 20, 40).Return(entries, nil).Once()

		got, err := f.uc.History(ctx, 7, 20, 40)

		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("Actions passes pagination through", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		actions := []*entity.Action{{MemberID: 7, ActionType: "generate_report"}}
		f.actions.EXPECT().ListByMember(ctx, uint64(7), 10, 0).Return(actions, nil).Once()

		got, err := f.uc.Actions(ctx, 7, 10, 0)

		require.NoError(t, err)
		assert.Equal(t, actions, got)
	})

	t.Run("Zero member ID rejected on reads", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)

		_, err := f.uc.History(ctx, 0, 10, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidMemberID)

		_, err = f.uc.Actions(ctx, 0, 10, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidMemberID)
	})
}
