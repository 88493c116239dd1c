package model

import (
	"time"
)

// ProcessedPurchaseTag represents the informational audit log of settled
// purchase tags. Never used to gate settlement; the external tag removal is
// what prevents re-processing.
type ProcessedPurchaseTag struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	MemberID       uint64    `gorm:"not null;index"`
	Tag            string    `gorm:"not null;size:100"`
	CreditsGranted int64     `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`

	Member Member `gorm:"foreignKey:MemberID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ProcessedPurchaseTag
func (ProcessedPurchaseTag) TableName() string {
	return "processed_purchase_tags"
}
