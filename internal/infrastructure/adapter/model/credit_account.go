package model

import (
	"time"
)

// CreditAccount represents the database model for per-member credit balances.
// The balance is a cached fold over credit_history_entries, maintained in the
// same transaction as every append.
type CreditAccount struct {
	MemberID        uint64    `gorm:"primaryKey;not null"`
	Balance         int64     `gorm:"not null;default:0"`
	LastRefreshedAt time.Time `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`

	Member Member `gorm:"foreignKey:MemberID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for CreditAccount
func (CreditAccount) TableName() string {
	return "credit_accounts"
}
