package model

import (
	"time"
)

// CreditHistoryEntry represents the append-only credit change log.
// Rows are never updated or deleted.
type CreditHistoryEntry struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	MemberID     uint64    `gorm:"not null;index"`
	ChangeAmount int64     `gorm:"not null"`
	ChangeType   string    `gorm:"not null;size:50;index"`
	BalanceAfter int64     `gorm:"not null"`
	ActionID     *uint64   `gorm:"index"`
	Note         string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null;index"`

	Member Member `gorm:"foreignKey:MemberID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for CreditHistoryEntry
func (CreditHistoryEntry) TableName() string {
	return "credit_history_entries"
}
