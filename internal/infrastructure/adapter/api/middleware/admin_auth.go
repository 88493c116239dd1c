package middleware

import (
	"net/http"

	domainerr "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/dto"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/session"
	"github.com/gin-gonic/gin"
)

// AdminAuth validates the X-Admin-Token header against live admin sessions
func AdminAuth(sessions *session.AdminSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if !sessions.Validate(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing or invalid admin token",
			})
			return
		}
		c.Next()
	}
}
