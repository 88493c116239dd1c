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

// ProcessedPurchaseTagRepository implements the purchase-tag audit log using GORM
type ProcessedPurchaseTagRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewProcessedPurchaseTagRepository creates a new repository instance
func NewProcessedPurchaseTagRepository(db *gorm.DB, logger coreport.Logger) *ProcessedPurchaseTagRepository {
	return &ProcessedPurchaseTagRepository{
		db:     db,
		logger: logger,
	}
}

// Create writes one audit row for a settled purchase tag
func (r *ProcessedPurchaseTagRepository) Create(ctx context.Context, tag *entity.ProcessedPurchaseTag) error {
	tagModel := model.ProcessedPurchaseTag{
		MemberID:       tag.MemberID,
		Tag:            tag.Tag,
		CreditsGranted: tag.CreditsGranted,
		CreatedAt:      tag.CreatedAt,
	}
	result := r.db.WithContext(ctx).Create(&tagModel)
	if result.Error != nil {
		r.logger.Error("Failed to create processed purchase tag", map[string]any{
			"member_id": tag.MemberID,
			"tag":       tag.Tag,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	tag.ID = tagModel.ID
	return nil
}

// ListByMember returns audit rows ordered newest first
func (r *ProcessedPurchaseTagRepository) ListByMember(ctx context.Context, memberID uint64, limit, offset int) ([]*entity.ProcessedPurchaseTag, error) {
	var tagModels []model.ProcessedPurchaseTag
	result := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&tagModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return lo.Map(tagModels, func(m model.ProcessedPurchaseTag, _ int) *entity.ProcessedPurchaseTag {
		return &entity.ProcessedPurchaseTag{
			ID:             m.ID,
			MemberID:       m.MemberID,
			Tag:            m.Tag,
			CreditsGranted: m.CreditsGranted,
			CreatedAt:      m.CreatedAt,
		}
	}), nil
}
