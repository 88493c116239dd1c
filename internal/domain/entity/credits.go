package entity

import (
	"time"

	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
)

// ChangeType classifies one credit balance change
type ChangeType string

// Change types recorded in the credit history
const (
	ChangeInitialGrant   ChangeType = "initial_grant"
	ChangeMonthlyRefresh ChangeType = "monthly_refresh"
	ChangeUpgradeBonus   ChangeType = "upgrade_bonus"
	ChangePurchase       ChangeType = "purchase"
	ChangeActionCost     ChangeType = "action_cost"
	ChangeAdminBonus     ChangeType = "admin_bonus"
	ChangeAdminRefresh   ChangeType = "admin_refresh"
)

// CreditAccount holds a member's cached balance. The append-only history is
// the source of truth; the balance is a fold maintained in the same
// transaction as every history append.
type CreditAccount struct {
	MemberID        uint64
	Balance         int64
	LastRefreshedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCreditAccount creates an account with a zero balance; the opening
// grant is applied as a regular ledger operation so history stays complete.
func NewCreditAccount(memberID uint64, timeProvider coreport.TimeProvider) (*CreditAccount, error) {
	if memberID == 0 {
		return nil, errs.ErrInvalidMemberID
	}
	now := timeProvider.Now()
	return &CreditAccount{
		MemberID:        memberID,
		Balance:         0,
		LastRefreshedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// CanDebit checks if the account has enough balance for a deduction
func (a *CreditAccount) CanDebit(amount int64) bool {
	return a.Balance >= amount
}

// Apply adds a signed change to the balance and returns the new balance.
// Negative results are rejected; debit paths must check CanDebit first.
func (a *CreditAccount) Apply(change int64, timeProvider coreport.TimeProvider) (int64, error) {
	next := a.Balance + change
	if next < 0 {
		return a.Balance, errs.ErrInsufficientCredits
	}
	a.Balance = next
	a.UpdatedAt = timeProvider.Now()
	return a.Balance, nil
}

// MarkRefreshed advances the monthly refresh baseline
func (a *CreditAccount) MarkRefreshed(timeProvider coreport.TimeProvider) {
	a.LastRefreshedAt = timeProvider.Now()
	a.UpdatedAt = a.LastRefreshedAt
}

// RefreshDue reports whether a calendar month has elapsed since the last
// refresh baseline. AddDate keeps "one month" aligned with the calendar
// rather than a fixed 30*24h window.
func (a *CreditAccount) RefreshDue(timeProvider coreport.TimeProvider) bool {
	return !timeProvider.Now().Before(a.LastRefreshedAt.AddDate(0, 1, 0))
}

// CreditHistoryEntry is one immutable row of the append-only change log
type CreditHistoryEntry struct {
	ID           uint64
	MemberID     uint64
	ChangeAmount int64
	ChangeType   ChangeType
	BalanceAfter int64
	ActionID     *uint64
	Note         string
	CreatedAt    time.Time
}

// NewCreditHistoryEntry creates a history row for a committed balance change
func NewCreditHistoryEntry(
	memberID uint64,
	changeAmount int64,
	changeType ChangeType,
	balanceAfter int64,
	note string,
	timeProvider coreport.TimeProvider,
) *CreditHistoryEntry {
	return &CreditHistoryEntry{
		MemberID:     memberID,
		ChangeAmount: changeAmount,
		ChangeType:   changeType,
		BalanceAfter: balanceAfter,
		Note:         note,
		CreatedAt:    timeProvider.Now(),
	}
}

// WithAction links the entry to the action that consumed the credits
func (e *CreditHistoryEntry) WithAction(actionID uint64) *CreditHistoryEntry {
	e.ActionID = &actionID
	return e
}
