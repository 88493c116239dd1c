package entity

import (
	"time"

	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
)

// Action records one credit-consuming event. Rows are written only when the
// debit succeeds; a rejected debit leaves no audit trace on this table.
type Action struct {
	ID          uint64
	MemberID    uint64
	ActionType  string
	CreditsCost int64
	Metadata    map[string]any
	Success     bool
	ErrorText   string
	CreatedAt   time.Time
}

// NewAction creates an action record for a successful debit
func NewAction(
	memberID uint64,
	actionType string,
	creditsCost int64,
	metadata map[string]any,
	timeProvider coreport.TimeProvider,
) (*Action, error) {
	if memberID == 0 {
		return nil, errs.ErrInvalidMemberID
	}
	if actionType == "" {
		return nil, errs.ErrInvalidRequest
	}
	if creditsCost <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Action{
		MemberID:    memberID,
		ActionType:  actionType,
		CreditsCost: creditsCost,
		Metadata:    metadata,
		Success:     true,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// ProcessedPurchaseTag is an informational audit row for one settled
// purchase tag. The external tag removal prevents re-processing; this table
// never gates settlement.
type ProcessedPurchaseTag struct {
	ID             uint64
	MemberID       uint64
	Tag            string
	CreditsGranted int64
	CreatedAt      time.Time
}

// NewProcessedPurchaseTag creates the audit row for one settled tag
func NewProcessedPurchaseTag(
	memberID uint64,
	purchase PurchaseTag,
	timeProvider coreport.TimeProvider,
) *ProcessedPurchaseTag {
	return &ProcessedPurchaseTag{
		MemberID:       memberID,
		Tag:            purchase.Tag,
		CreditsGranted: purchase.Credits,
		CreatedAt:      timeProvider.Now(),
	}
}
