package repository

import (
	"context"
	"fmt"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/model"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ActionRepository implements persistence.ActionRepository using GORM
type ActionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewActionRepository creates a new ActionRepository instance
func NewActionRepository(db *gorm.DB, logger coreport.Logger) *ActionRepository {
	return &ActionRepository{
		db:     db,
		logger: logger,
	}
}

func actionModelToEntity(m *model.Action) *entity.Action {
	return &entity.Action{
		ID:          m.ID,
		MemberID:    m.MemberID,
		ActionType:  m.ActionType,
		CreditsCost: m.CreditsCost,
		Metadata:    m.Metadata,
		Success:     m.Success,
		ErrorText:   m.ErrorText,
		CreatedAt:   m.CreatedAt,
	}
}

// Create writes one action row and backfills the generated ID
func (r *ActionRepository) Create(ctx context.Context, action *entity.Action) error {
	actionModel := model.Action{
		MemberID:    action.MemberID,
		ActionType:  action.ActionType,
		CreditsCost: action.CreditsCost,
		Metadata:    action.Metadata,
		Success:     action.Success,
		ErrorText:   action.ErrorText,
		CreatedAt:   action.CreatedAt,
	}
	result := r.db.WithContext(ctx).Create(&actionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create action record", map[string]any{
			"member_id":   action.MemberID,
			"action_type": action.ActionType,
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	action.ID = actionModel.ID
	return nil
}

// ListByMember returns actions ordered newest first
func (r *ActionRepository) ListByMember(ctx context.Context, memberID uint64, limit, offset int) ([]*entity.Action, error) {
	var actionModels []model.Action
	result := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&actionModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return lo.Map(actionModels, func(m model.Action, _ int) *entity.Action {
		return actionModelToEntity(&m)
	}), nil
}
