package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	domainerror "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/domain/port/external"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/config"
)

// Client talks to the community platform's headless member API. All calls
// carry the admin API token; member-scoped reads use the per-member access
// token returned by the auth exchange.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	logger     coreport.Logger
}

// NewClient creates a platform API client from configuration
func NewClient(cfg config.PlatformConfig, logger coreport.Logger) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

var _ external.IdentityProvider = (*Client)(nil)

type authTokenResponse struct {
	AccessToken string         `json:"access_token"`
	MemberID    json.Number    `json:"community_member_id"`
	Member      map[string]any `json:"community_member"`
}

// Authenticate exchanges credential hints for a member access token.
// The SSO token path is preferred; the id/email pair is the embedded
// frame's fallback when no SSO token was forwarded.
func (c *Client) Authenticate(ctx context.Context, hint external.AuthHint) (*external.AuthResult, error) {
	if c.apiToken == "" {
		return nil, domainerror.ErrConfiguration
	}

	payload := map[string]string{}
	switch {
	case hint.SSOToken != "":
		payload["sso_token"] = hint.SSOToken
	case hint.ExternalID != "" || hint.Email != "":
		if hint.ExternalID != "" {
			payload["community_member_id"] = hint.ExternalID
		}
		if hint.Email != "" {
			payload["email"] = hint.Email
		}
	default:
		return nil, domainerror.NewAuthError("no credential hints supplied", nil)
	}

	var resp authTokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/headless/auth_token", c.apiToken, payload, &resp); err != nil {
		c.logger.Warn("Platform auth exchange failed", map[string]any{"error": err.Error()})
		return nil, domainerror.NewAuthError("auth token exchange failed", err)
	}
	if resp.AccessToken == "" || resp.MemberID.String() == "" {
		return nil, domainerror.NewAuthError("auth token exchange returned an incomplete response", nil)
	}

	return &external.AuthResult{
		AccessToken:      resp.AccessToken,
		ExternalMemberID: resp.MemberID.String(),
		RawProfile:       resp.Member,
	}, nil
}

// FetchProfile loads the full member profile using the member access token
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (map[string]any, error) {
	var profile map[string]any
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/headless/member", accessToken, nil, &profile); err != nil {
		return nil, fmt.Errorf("failed to fetch member profile: %w", err)
	}
	return profile, nil
}

type tagListResponse struct {
	Tags []struct {
		ID   json.Number `json:"id"`
		Name string      `json:"name"`
	} `json:"tags"`
}

// ResolveTagID looks up the platform's internal id for a tag literal
func (c *Client) ResolveTagID(ctx context.Context, tagLiteral string) (string, bool, error) {
	path := "/api/v1/admin/member_tags?name=" + url.QueryEscape(tagLiteral)

	var resp tagListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, c.apiToken, nil, &resp); err != nil {
		return "", false, fmt.Errorf("failed to resolve tag %q: %w", tagLiteral, err)
	}

	for _, tag := range resp.Tags {
		if tag.Name == tagLiteral {
			return tag.ID.String(), true, nil
		}
	}
	return "", false, nil
}

// RemoveTag removes a tag from a member on the platform
func (c *Client) RemoveTag(ctx context.Context, email string, tagID string) error {
	id, err := strconv.ParseInt(tagID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid tag id %q: %w", tagID, err)
	}

	payload := map[string]any{
		"email":         email,
		"member_tag_id": id,
	}
	if err := c.doJSON(ctx, http.MethodDelete, "/api/v1/admin/tagged_members", c.apiToken, payload, nil); err != nil {
		return fmt.Errorf("failed to remove tag %s from %s: %w", tagID, email, err)
	}
	return nil
}

// doJSON performs one request against the platform API and decodes the
// JSON response body into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path, bearer string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("platform returned status %d for %s: %s", resp.StatusCode, path, string(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
