package model

import (
	"time"
)

// Action represents the database model for credit-consuming events
type Action struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement"`
	MemberID    uint64         `gorm:"not null;index"`
	ActionType  string         `gorm:"not null;size:100;index"`
	CreditsCost int64          `gorm:"not null"`
	Metadata    map[string]any `gorm:"serializer:json;type:text"`
	Success     bool           `gorm:"not null;default:true"`
	ErrorText   string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"not null;index"`

	Member Member `gorm:"foreignKey:MemberID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Action
func (Action) TableName() string {
	return "actions"
}
