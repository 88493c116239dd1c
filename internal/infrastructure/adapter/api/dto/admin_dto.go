package dto

// AdminLoginRequest exchanges the configured admin key for a session token
type AdminLoginRequest struct {
	AdminKey string `json:"adminKey" binding:"required"`
}

// AdminLoginResponse carries the opaque admin session token
type AdminLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// AdminAdjustRequest applies a bonus and/or forced refresh to a member
type AdminAdjustRequest struct {
	MemberID     uint64 `json:"memberId" binding:"required"`
	BonusAmount  int64  `json:"bonusAmount"`
	ForceRefresh bool   `json:"forceRefresh"`
	Note         string `json:"note"`
}

// AdminAdjustResponse reports the balance after the adjustments
type AdminAdjustResponse struct {
	MemberID       uint64 `json:"memberId"`
	Balance        int64  `json:"balance"`
	BonusApplied   bool   `json:"bonusApplied"`
	RefreshApplied bool   `json:"refreshApplied"`
}

// AdminMemberCreditsResponse is the admin view of a member's ledger
type AdminMemberCreditsResponse struct {
	Member  MemberResponse         `json:"member"`
	Balance int64                  `json:"balance"`
	History []HistoryEntryResponse `json:"history"`
}
