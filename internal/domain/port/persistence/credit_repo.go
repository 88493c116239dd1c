package persistence

import (
	"context"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
)

// CreditAccountRepository manages the per-member credit account row
type CreditAccountRepository interface {
	// GetByMemberID retrieves the account without locking it
	//
	// Possible errors:
	// - ErrAccountNotFound: if the member has no account yet
	// - ErrDatabaseConnection: if the database is unreachable
	GetByMemberID(ctx context.Context, memberID uint64) (*entity.CreditAccount, error)

	// GetByMemberIDForUpdate retrieves the account under a row-level
	// exclusive lock. Must be called inside a unit of work; the lock is
	// held until that transaction commits or rolls back, which is what
	// serializes concurrent mutators per member.
	//
	// Possible errors:
	// - ErrAccountNotFound: if the member has no account yet
	// - ErrDatabaseConnection: if the database is unreachable
	GetByMemberIDForUpdate(ctx context.Context, memberID uint64) (*entity.CreditAccount, error)

	// Create inserts a new account row
	Create(ctx context.Context, account *entity.CreditAccount) error

	// Update persists balance and refresh baseline changes
	Update(ctx context.Context, account *entity.CreditAccount) error
}

// CreditHistoryRepository appends and reads the immutable change log
type CreditHistoryRepository interface {
	// Append writes one history entry. Entries are never updated or
	// deleted afterwards.
	Append(ctx context.Context, entry *entity.CreditHistoryEntry) error

	// ListByMember returns entries ordered newest first
	ListByMember(ctx context.Context, memberID uint64, limit, offset int) ([]*entity.CreditHistoryEntry, error)

	// SumByMember folds all change amounts for a member. Used by
	// consistency checks against the cached balance.
	SumByMember(ctx context.Context, memberID uint64) (int64, error)
}

// ActionRepository stores credit-consuming action records
type ActionRepository interface {
	// Create writes one action row and backfills its generated ID
	Create(ctx context.Context, action *entity.Action) error

	// ListByMember returns actions ordered newest first
	ListByMember(ctx context.Context, memberID uint64, limit, offset int) ([]*entity.Action, error)
}

// ProcessedPurchaseTagRepository stores the informational purchase-tag audit log
type ProcessedPurchaseTagRepository interface {
	// Create writes one audit row for a settled purchase tag
	Create(ctx context.Context, tag *entity.ProcessedPurchaseTag) error

	// ListByMember returns audit rows ordered newest first
	ListByMember(ctx context.Context, memberID uint64, limit, offset int) ([]*entity.ProcessedPurchaseTag, error)
}
