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

// CreditHistoryRepository implements persistence.CreditHistoryRepository using GORM
type CreditHistoryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCreditHistoryRepository creates a new CreditHistoryRepository instance
func NewCreditHistoryRepository(db *gorm.DB, logger coreport.Logger) *CreditHistoryRepository {
	return &CreditHistoryRepository{
		db:     db,
		logger: logger,
	}
}

func historyModelToEntity(m *model.CreditHistoryEntry) *entity.CreditHistoryEntry {
	return &entity.CreditHistoryEntry{
		ID:           m.ID,
		MemberID:     m.MemberID,
		ChangeAmount: m.ChangeAmount,
		ChangeType:   entity.ChangeType(m.ChangeType),
		BalanceAfter: m.BalanceAfter,
		ActionID:     m.ActionID,
		Note:         m.Note,
		CreatedAt:    m.CreatedAt,
	}
}

// Append writes one immutable history entry
func (r *CreditHistoryRepository) Append(ctx context.Context, entry *entity.CreditHistoryEntry) error {
	entryModel := model.CreditHistoryEntry{
		MemberID:     entry.MemberID,
		ChangeAmount: entry.ChangeAmount,
		ChangeType:   string(entry.ChangeType),
		BalanceAfter: entry.BalanceAfter,
		ActionID:     entry.ActionID,
		Note:         entry.Note,
		CreatedAt:    entry.CreatedAt,
	}
	result := r.db.WithContext(ctx).Create(&entryModel)
	if result.Error != nil {
		r.logger.Error("Failed to append credit history entry", map[string]any{
			"member_id":   entry.MemberID,
			"change_type": string(entry.ChangeType),
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	entry.ID = entryModel.ID
	return nil
}

// ListByMember returns entries ordered newest first
func (r *CreditHistoryRepository) ListByMember(ctx context.Context, memberID uint64, limit, offset int) ([]*entity.CreditHistoryEntry, error) {
	var entryModels []model.CreditHistoryEntry
	result := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&entryModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return lo.Map(entryModels, func(m model.CreditHistoryEntry, _ int) *entity.CreditHistoryEntry {
		return historyModelToEntity(&m)
	}), nil
}

// SumByMember folds all change amounts for a member
func (r *CreditHistoryRepository) SumByMember(ctx context.Context, memberID uint64) (int64, error) {
	var sum int64
	result := r.db.WithContext(ctx).Model(&model.CreditHistoryEntry{}).
		Where("member_id = ?", memberID).
		Select("COALESCE(SUM(change_amount), 0)").
		Scan(&sum)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return sum, nil
}
