package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MemberRepository implements persistence.MemberRepository using GORM
type MemberRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMemberRepository creates a new MemberRepository instance
func NewMemberRepository(db *gorm.DB, logger coreport.Logger) *MemberRepository {
	return &MemberRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func memberModelToEntity(m *model.Member) *entity.Member {
	return &entity.Member{
		ID:          m.ID,
		ExternalID:  m.ExternalID,
		Email:       m.Email,
		Name:        m.Name,
		AvatarURL:   m.AvatarURL,
		IsAdmin:     m.IsAdmin,
		IsModerator: m.IsModerator,
		IsPaid:      m.IsPaid,
		Tags:        m.Tags,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		LastSeenAt:  m.LastSeenAt,
	}
}

func memberEntityToModel(m *entity.Member) *model.Member {
	return &model.Member{
		ID:          m.ID,
		ExternalID:  m.ExternalID,
		Email:       m.Email,
		Name:        m.Name,
		AvatarURL:   m.AvatarURL,
		IsAdmin:     m.IsAdmin,
		IsModerator: m.IsModerator,
		IsPaid:      m.IsPaid,
		Tags:        m.Tags,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		LastSeenAt:  m.LastSeenAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *MemberRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrMemberNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateMember
	}
	if r.errorClassifier.IsConstraintError(err) {
		// Email collisions across external IDs propagate as-is
		return err
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a member by internal ID
func (r *MemberRepository) GetByID(ctx context.Context, id uint64) (*entity.Member, error) {
	var memberModel model.Member
	result := r.db.WithContext(ctx).First(&memberModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting member", result.Error)
	}
	return memberModelToEntity(&memberModel), nil
}

// GetByExternalID retrieves a member by the platform's member ID
func (r *MemberRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.Member, error) {
	var memberModel model.Member
	result := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&memberModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting member by external ID", result.Error)
	}
	return memberModelToEntity(&memberModel), nil
}

// Create inserts a new member row and backfills the generated ID
func (r *MemberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberModel := memberEntityToModel(member)
	result := r.db.WithContext(ctx).Create(memberModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating member", result.Error)
	}
	member.ID = memberModel.ID

	r.logger.Info("Member row created", map[string]any{
		"member_id":   member.ID,
		"external_id": member.ExternalID,
	})
	return nil
}

// Update persists the mutable profile fields of an existing member
func (r *MemberRepository) Update(ctx context.Context, member *entity.Member) error {
	// Save writes every column, so boolean downgrades (paid back to free)
	// and the serialized tag list are not skipped as zero values
	memberModel := memberEntityToModel(member)
	result := r.db.WithContext(ctx).Save(memberModel)
	if result.Error != nil {
		return r.handleDatabaseError("updating member", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrMemberNotFound
	}
	return nil
}
