package entity

import (
	"testing"
	"time"

	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coremocks "github.com/lunarbyte-dev/member-credits/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreditAccount(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Valid member ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		account, err := NewCreditAccount(42, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), account.MemberID)
		assert.Equal(t, int64(0), account.Balance)
		assert.Equal(t, fixedTime, account.LastRefreshedAt)
		assert.Equal(t, fixedTime, account.CreatedAt)
	})

	t.Run("Zero member ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		account, err := NewCreditAccount(0, mockTime)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrInvalidMemberID)
	})
}

func TestCreditAccountApply(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Positive change", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		account := &CreditAccount{MemberID: 1, Balance: 100}
		balance, err := account.Apply(50, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(150), balance)
		assert.Equal(t, int64(150), account.Balance)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Debit down to zero", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		account := &CreditAccount{MemberID: 1, Balance: 100}
		balance, err := account.Apply(-100, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("Change below zero is rejected and balance untouched", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		account := &CreditAccount{MemberID: 1, Balance: 100}
		balance, err := account.Apply(-101, mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Equal(t, int64(100), balance)
		assert.Equal(t, int64(100), account.Balance)
	})
}

func TestCreditAccountCanDebit(t *testing.T) {
	account := &CreditAccount{MemberID: 1, Balance: 100}

	assert.True(t, account.CanDebit(99))
	assert.True(t, account.CanDebit(100))
	assert.False(t, account.CanDebit(101))
}

func TestCreditAccountRefreshDue(t *testing.T) {
	baseline := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	account := &CreditAccount{MemberID: 1, LastRefreshedAt: baseline}

	testCases := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{"Same instant", baseline, false},
		{"One second before the month boundary", time.Date(2025, 4, 15, 11, 59, 59, 0, time.UTC), false},
		{"Exactly one calendar month later", time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC), true},
		{"Well past the boundary", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTime := coremocks.NewMockTimeProvider(t)
			mockTime.EXPECT().Now().Return(tc.now).Once()

			assert.Equal(t, tc.expected, account.RefreshDue(mockTime))
		})
	}
}

func TestCreditAccountMarkRefreshed(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	account := &CreditAccount{MemberID: 1, LastRefreshedAt: fixedTime.AddDate(0, -2, 0)}
	account.MarkRefreshed(mockTime)

	assert.Equal(t, fixedTime, account.LastRefreshedAt)
	assert.Equal(t, fixedTime, account.UpdatedAt)
}

func TestNewCreditHistoryEntry(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	entry := NewCreditHistoryEntry(7, -30, ChangeActionCost, 70, "generate_report", mockTime)

	assert.Equal(t, uint64(7), entry.MemberID)
	assert.Equal(t, int64(-30), entry.ChangeAmount)
	assert.Equal(t, ChangeActionCost, entry.ChangeType)
	assert.Equal(t, int64(70), entry.BalanceAfter)
	assert.Equal(t, "generate_report", entry.Note)
	assert.Equal(t, fixedTime, entry.CreatedAt)
	assert.Nil(t, entry.ActionID)

	entry.WithAction(99)
	require.NotNil(t, entry.ActionID)
	assert.Equal(t, uint64(99), *entry.ActionID)
}
