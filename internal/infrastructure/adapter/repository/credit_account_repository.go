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
	"gorm.io/gorm/clause"
)

// CreditAccountRepository implements persistence.CreditAccountRepository using GORM
type CreditAccountRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCreditAccountRepository creates a new CreditAccountRepository instance
func NewCreditAccountRepository(db *gorm.DB, logger coreport.Logger) *CreditAccountRepository {
	return &CreditAccountRepository{
		db:     db,
		logger: logger,
	}
}

func accountModelToEntity(m *model.CreditAccount) *entity.CreditAccount {
	return &entity.CreditAccount{
		MemberID:        m.MemberID,
		Balance:         m.Balance,
		LastRefreshedAt: m.LastRefreshedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *CreditAccountRepository) handleDatabaseError(operation string, err error, memberID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"member_id": memberID,
		"error":     err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByMemberID retrieves the account without locking it
func (r *CreditAccountRepository) GetByMemberID(ctx context.Context, memberID uint64) (*entity.CreditAccount, error) {
	var accountModel model.CreditAccount
	result := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		First(&accountModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting credit account", result.Error, memberID)
	}
	return accountModelToEntity(&accountModel), nil
}

// GetByMemberIDForUpdate retrieves the account under an exclusive row lock.
// Inside a transaction this serializes all concurrent mutators per member.
func (r *CreditAccountRepository) GetByMemberIDForUpdate(ctx context.Context, memberID uint64) (*entity.CreditAccount, error) {
	var accountModel model.CreditAccount
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("member_id = ?", memberID).
		First(&accountModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking credit account", result.Error, memberID)
	}
	return accountModelToEntity(&accountModel), nil
}

// Create inserts a new account row
func (r *CreditAccountRepository) Create(ctx context.Context, account *entity.CreditAccount) error {
	accountModel := model.CreditAccount{
		MemberID:        account.MemberID,
		Balance:         account.Balance,
		LastRefreshedAt: account.LastRefreshedAt,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating credit account", result.Error, account.MemberID)
	}
	return nil
}

// Update persists balance and refresh baseline changes
func (r *CreditAccountRepository) Update(ctx context.Context, account *entity.CreditAccount) error {
	result := r.db.WithContext(ctx).Model(&model.CreditAccount{}).
		Where("member_id = ?", account.MemberID).
		Updates(map[string]any{
			"balance":           account.Balance,
			"last_refreshed_at": account.LastRefreshedAt,
			"updated_at":        account.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating credit account", result.Error, account.MemberID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}
