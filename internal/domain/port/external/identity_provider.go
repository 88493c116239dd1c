package external

import (
	"context"
)

// AuthResult is the outcome of a successful identity exchange
type AuthResult struct {
	AccessToken      string
	ExternalMemberID string
	RawProfile       map[string]any
}

// AuthHint carries the credential hints the embedded frame can supply
type AuthHint struct {
	SSOToken   string
	ExternalID string
	Email      string
}

// IdentityProvider is the external community platform collaborator.
// Authenticate failures abort reconciliation before any local write;
// ResolveTagID and RemoveTag are best-effort and never escalate.
type IdentityProvider interface {
	// Authenticate exchanges credential hints for an access token and
	// member identity.
	//
	// Possible errors:
	// - ErrAuthFailed: exchange rejected or upstream unreachable
	// - ErrConfiguration: no credential backend is configured
	Authenticate(ctx context.Context, hint AuthHint) (*AuthResult, error)

	// FetchProfile loads the full member profile for an access token.
	// Callers fall back to the authentication response's raw profile
	// when this fails.
	FetchProfile(ctx context.Context, accessToken string) (map[string]any, error)

	// ResolveTagID resolves a tag literal to the platform's tag ID.
	// A false second return means the tag does not exist upstream.
	ResolveTagID(ctx context.Context, tagLiteral string) (string, bool, error)

	// RemoveTag removes a tag from the member on the platform, which is
	// what prevents a purchase tag from being settled twice.
	RemoveTag(ctx context.Context, email string, tagID string) error
}
