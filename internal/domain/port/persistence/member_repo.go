package persistence

import (
	"context"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
)

// MemberRepository defines methods to interact with the member directory
type MemberRepository interface {
	// GetByID retrieves a member by internal ID
	//
	// Possible errors:
	// - ErrMemberNotFound: if no member has this ID
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Member, error)

	// GetByExternalID retrieves a member by the platform's member ID.
	// The directory upsert reads through this before writing so the
	// pre-update snapshot is available to the orchestrator.
	//
	// Possible errors:
	// - ErrMemberNotFound: if no member has this external ID
	// - ErrDatabaseConnection: if the database is unreachable
	GetByExternalID(ctx context.Context, externalID string) (*entity.Member, error)

	// Create inserts a new member row
	//
	// Possible errors:
	// - ErrDuplicateMember: if the external ID or email already exists
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, member *entity.Member) error

	// Update persists the mutable profile fields of an existing member
	//
	// Possible errors:
	// - ErrMemberNotFound: if the member row is gone
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, member *entity.Member) error
}
