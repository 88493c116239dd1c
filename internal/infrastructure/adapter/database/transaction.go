package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/domain/port/persistence"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern over gorm transactions.
// Repositories obtained through it inside Begin/Commit are bound to the
// open transaction; outside one they fall back to the base connection.
type UnitOfWork struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: logger,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the current transaction. A transaction that already
// finished is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// GetMemberRepository returns a member repository in the current transaction
func (u *UnitOfWork) GetMemberRepository(ctx context.Context) persistence.MemberRepository {
	return repository.NewMemberRepository(u.dbFromContext(ctx), u.logger)
}

// GetCreditAccountRepository returns an account repository in the current transaction
func (u *UnitOfWork) GetCreditAccountRepository(ctx context.Context) persistence.CreditAccountRepository {
	return repository.NewCreditAccountRepository(u.dbFromContext(ctx), u.logger)
}

// GetCreditHistoryRepository returns a history repository in the current transaction
func (u *UnitOfWork) GetCreditHistoryRepository(ctx context.Context) persistence.CreditHistoryRepository {
	return repository.NewCreditHistoryRepository(u.dbFromContext(ctx), u.logger)
}

// GetActionRepository returns an action repository in the current transaction
func (u *UnitOfWork) GetActionRepository(ctx context.Context) persistence.ActionRepository {
	return repository.NewActionRepository(u.dbFromContext(ctx), u.logger)
}

// GetProcessedPurchaseTagRepository returns a purchase-tag audit repository in the current transaction
func (u *UnitOfWork) GetProcessedPurchaseTagRepository(ctx context.Context) persistence.ProcessedPurchaseTagRepository {
	return repository.NewProcessedPurchaseTagRepository(u.dbFromContext(ctx), u.logger)
}

// dbFromContext retrieves the transactional handle, falling back to the base connection
func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
