package dto

import "time"

// BalanceResponse represents the API response for a balance query
type BalanceResponse struct {
	MemberID        uint64    `json:"memberId"`
	Balance         int64     `json:"balance"`
	LastRefreshedAt time.Time `json:"lastRefreshedAt"`
}

// SpendRequest represents the API request for spending credits on an action
type SpendRequest struct {
	ActionType string         `json:"actionType" binding:"required"`
	Cost       int64          `json:"cost" binding:"required,gt=0"`
	Metadata   map[string]any `json:"metadata"`
}

// SpendResponse represents the API response for a successful spend
type SpendResponse struct {
	ActionID         uint64 `json:"actionId"`
	ActionType       string `json:"actionType"`
	CreditsCost      int64  `json:"creditsCost"`
	RemainingBalance int64  `json:"remainingBalance"`
}

// HistoryEntryResponse is one row of the credit change log
type HistoryEntryResponse struct {
	ID           uint64    `json:"id"`
	ChangeAmount int64     `json:"changeAmount"`
	ChangeType   string    `json:"changeType"`
	BalanceAfter int64     `json:"balanceAfter"`
	ActionID     *uint64   `json:"actionId,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HistoryResponse is a page of the credit change log, newest first
type HistoryResponse struct {
	MemberID uint64                 `json:"memberId"`
	Entries  []HistoryEntryResponse `json:"entries"`
	Limit    int                    `json:"limit"`
	Offset   int                    `json:"offset"`
}

// ActionResponse is one row of the action audit log
type ActionResponse struct {
	ID          uint64         `json:"id"`
	ActionType  string         `json:"actionType"`
	CreditsCost int64          `json:"creditsCost"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Success     bool           `json:"success"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ActionsResponse is a page of the action audit log, newest first
type ActionsResponse struct {
	MemberID uint64           `json:"memberId"`
	Actions  []ActionResponse `json:"actions"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}
