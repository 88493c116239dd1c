package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-row ledger mutations so the balance update
// and its history/audit rows commit together or not at all
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetMemberRepository returns a member repository bound to the current transaction
	GetMemberRepository(ctx context.Context) MemberRepository

	// GetCreditAccountRepository returns an account repository bound to the current transaction
	GetCreditAccountRepository(ctx context.Context) CreditAccountRepository

	// GetCreditHistoryRepository returns a history repository bound to the current transaction
	GetCreditHistoryRepository(ctx context.Context) CreditHistoryRepository

	// GetActionRepository returns an action repository bound to the current transaction
	GetActionRepository(ctx context.Context) ActionRepository

	// GetProcessedPurchaseTagRepository returns a purchase-tag audit repository bound to the current transaction
	GetProcessedPurchaseTagRepository(ctx context.Context) ProcessedPurchaseTagRepository
}
