package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/dto"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/session"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares
const (
	ContextMemberID    = "memberID"
	ContextExternalID  = "externalID"
	ContextIsAdmin     = "isAdmin"
	ContextIsModerator = "isModerator"
)

// MemberAuth validates the session token and injects the member identity
// into the request context. The token comes from the Authorization header,
// falling back to the session cookie set by the auth callback.
func MemberAuth(sessions *session.Service, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing session token",
			})
			return
		}

		claims, err := sessions.ValidateMemberToken(token)
		if err != nil {
			logger.Debug("Session token rejected", map[string]any{
				"error": err.Error(),
				"path":  c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Invalid or expired session token",
			})
			return
		}

		c.Set(ContextMemberID, claims.MemberID)
		c.Set(ContextExternalID, claims.ExternalID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Set(ContextIsModerator, claims.IsModerator)
		c.Next()
	}
}

// sessionToken extracts the session token from the Authorization header,
// or from the session cookie when no bearer token is present
func sessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
		return token
	}
	if cookie, err := c.Cookie(session.MemberCookieName); err == nil {
		return cookie
	}
	return ""
}

// MemberIDFromContext returns the authenticated member's ID
func MemberIDFromContext(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(ContextMemberID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
