package model

import (
	"time"
)

// Member represents the database model for platform members
type Member struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	ExternalID  string    `gorm:"uniqueIndex;not null;size:255"`
	Email       string    `gorm:"uniqueIndex;not null;size:255"`
	Name        string    `gorm:"size:255"`
	AvatarURL   string    `gorm:"size:1024"`
	IsAdmin     bool      `gorm:"not null;default:false"`
	IsModerator bool      `gorm:"not null;default:false"`
	IsPaid      bool      `gorm:"not null;default:false"`
	Tags        []string  `gorm:"serializer:json;type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	LastSeenAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Member
func (Member) TableName() string {
	return "members"
}
