package dto

// AuthCallbackRequest carries the credential hints the embedded frame
// forwards. At least one of ssoToken or memberId/email must be present.
type AuthCallbackRequest struct {
	SSOToken string `json:"ssoToken"`
	MemberID string `json:"memberId"`
	Email    string `json:"email"`
}

// MemberResponse is the member profile shape shared across endpoints
type MemberResponse struct {
	ID          uint64   `json:"id"`
	ExternalID  string   `json:"externalId"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	IsAdmin     bool     `json:"isAdmin"`
	IsModerator bool     `json:"isModerator"`
	IsPaid      bool     `json:"isPaid"`
	Tags        []string `json:"tags"`
}

// AuthCallbackResponse is the enriched result of authenticate-and-reconcile
type AuthCallbackResponse struct {
	Member                MemberResponse `json:"member"`
	SessionToken          string         `json:"sessionToken"`
	CreditsBalance        int64          `json:"creditsBalance"`
	IsNewUser             bool           `json:"isNewUser"`
	ProcessedPurchaseTags []string       `json:"processedPurchaseTags"`
	CreditsDegraded       bool           `json:"creditsDegraded,omitempty"`
}
