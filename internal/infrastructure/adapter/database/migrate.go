package database

import (
	"fmt"

	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all persisted models.
// Order matters: members must exist before tables with foreign keys to them.
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	models := []any{
		&model.Member{},
		&model.CreditAccount{},
		&model.CreditHistoryEntry{},
		&model.Action{},
		&model.ProcessedPurchaseTag{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Database migration failed", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	logger.Info("Database migration completed", map[string]any{"models": len(models)})
	return nil
}
