package session

import (
	"crypto/subtle"

	"github.com/google/uuid"

	domainerror "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/tokencache"
)

// AdminSessions exchanges the configured admin key for short-lived opaque
// tokens. Tokens live only in memory; a restart invalidates them all.
type AdminSessions struct {
	adminKey string
	tokens   *tokencache.Cache
}

// NewAdminSessions creates the admin session store
func NewAdminSessions(adminKey string, tokens *tokencache.Cache) *AdminSessions {
	return &AdminSessions{
		adminKey: adminKey,
		tokens:   tokens,
	}
}

// Login validates the admin key and issues an opaque session token
func (a *AdminSessions) Login(key string) (string, error) {
	if a.adminKey == "" {
		return "", domainerror.ErrConfiguration
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(a.adminKey)) != 1 {
		return "", domainerror.ErrUnauthorized
	}

	token := uuid.New().String()
	a.tokens.Put(token, "admin")
	return token, nil
}

// Validate reports whether the token belongs to a live admin session
func (a *AdminSessions) Validate(token string) bool {
	if token == "" {
		return false
	}
	_, ok := a.tokens.Get(token)
	return ok
}

// Revoke drops a session token
func (a *AdminSessions) Revoke(token string) {
	a.tokens.Delete(token)
}
