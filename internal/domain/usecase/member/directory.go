package member

import (
	"context"
	"errors"
	"time"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/domain/port/persistence"
)

// newMemberGraceWindow covers the race where the credit account lookup
// momentarily disagrees with a member row created by a competing request
const newMemberGraceWindow = 30 * time.Second

// UpsertResult is what one directory upsert reports back to the orchestrator
type UpsertResult struct {
	Member *entity.Member
	// Previous is the snapshot read before the write; transition
	// detection depends on the pre-update paid status.
	Previous entity.MemberSnapshot
	// IsNewlyCreated is true when this call inserted the row, or when the
	// row's first-seen timestamp is inside the grace window.
	IsNewlyCreated bool
}

// Directory resolves external identities to member rows and keeps profile
// attributes current
type Directory struct {
	memberRepo   persistence.MemberRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewDirectory creates the member directory use case
func NewDirectory(
	memberRepo persistence.MemberRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Directory {
	return &Directory{
		memberRepo:   memberRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Upsert inserts or updates the member keyed on the external member ID.
// The existing row is read first so the caller gets the pre-update snapshot.
// Email collisions on a different external ID are the collaborator's data
// error; the constraint violation propagates unchanged.
func (d *Directory) Upsert(ctx context.Context, profile entity.MemberProfile) (*UpsertResult, error) {
	existing, err := d.memberRepo.GetByExternalID(ctx, profile.ExternalID)
	if err != nil && !errors.Is(err, errs.ErrMemberNotFound) {
		return nil, err
	}

	if existing == nil {
		created, newErr := entity.NewMember(profile, d.timeProvider)
		if newErr != nil {
			return nil, newErr
		}
		if createErr := d.memberRepo.Create(ctx, created); createErr != nil {
			return nil, createErr
		}

		d.logger.Info("Member created", map[string]any{
			"member_id":   created.ID,
			"external_id": created.ExternalID,
			"is_paid":     created.IsPaid,
		})
		return &UpsertResult{
			Member:         created,
			Previous:       entity.MemberSnapshot{},
			IsNewlyCreated: true,
		}, nil
	}

	previous := existing.Snapshot()
	existing.ApplyProfile(profile, d.timeProvider)
	if err := d.memberRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	d.logger.Debug("Member profile updated", map[string]any{
		"member_id":   existing.ID,
		"external_id": existing.ExternalID,
		"is_paid":     existing.IsPaid,
	})
	return &UpsertResult{
		Member:         existing,
		Previous:       previous,
		IsNewlyCreated: existing.AgeWithin(newMemberGraceWindow, d.timeProvider),
	}, nil
}

// GetByID loads one member by internal ID
func (d *Directory) GetByID(ctx context.Context, id uint64) (*entity.Member, error) {
	if id == 0 {
		return nil, errs.ErrInvalidMemberID
	}
	return d.memberRepo.GetByID(ctx, id)
}
