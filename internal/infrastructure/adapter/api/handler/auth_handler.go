package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	domainerr "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/domain/port/external"
	"github.com/lunarbyte-dev/member-credits/internal/domain/usecase/reconcile"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/dto"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/session"
)

// AuthHandler handles the authentication callback from the embedded frame
type AuthHandler struct {
	reconciler *reconcile.Reconciler
	sessions   *session.Service
	logger     coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	reconciler *reconcile.Reconciler,
	sessions *session.Service,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		reconciler: reconciler,
		sessions:   sessions,
		logger:     logger,
	}
}

// Callback handles the POST /api/auth/callback endpoint
func (h *AuthHandler) Callback(c *gin.Context) {
	var req dto.AuthCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}
	if req.SSOToken == "" && req.MemberID == "" && req.Email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "At least one credential hint is required",
		})
		return
	}

	result, err := h.reconciler.Authenticate(c.Request.Context(), external.AuthHint{
		SSOToken:   req.SSOToken,
		ExternalID: req.MemberID,
		Email:      req.Email,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "Internal server error"

		switch {
		case domainerr.IsConfigurationError(err):
			message = "Authentication backend is not configured"
		case domainerr.IsAuthError(err):
			statusCode = http.StatusUnauthorized
			message = "Authentication failed"
		}

		h.logger.Warn("Authentication callback failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	member := result.Member
	token, err := h.sessions.GenerateMemberToken(member.ID, member.ExternalID, member.IsAdmin, member.IsModerator)
	if err != nil {
		h.logger.Error("Failed to issue session token", map[string]any{
			"member_id": member.ID,
			"error":     err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	c.SetCookie(session.MemberCookieName, token, int(h.sessions.MemberTTL().Seconds()), "/", "", true, true)
	c.JSON(http.StatusOK, dto.AuthCallbackResponse{
		Member:                toMemberResponse(member),
		SessionToken:          token,
		CreditsBalance:        result.Balance,
		IsNewUser:             result.IsNewUser,
		ProcessedPurchaseTags: result.ProcessedTags,
		CreditsDegraded:       result.CreditsDegraded,
	})
}

// toMemberResponse maps a member entity to its API shape
func toMemberResponse(m *entity.Member) dto.MemberResponse {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.MemberResponse{
		ID:          m.ID,
		ExternalID:  m.ExternalID,
		Email:       m.Email,
		Name:        m.Name,
		AvatarURL:   m.AvatarURL,
		IsAdmin:     m.IsAdmin,
		IsModerator: m.IsModerator,
		IsPaid:      m.IsPaid,
		Tags:        tags,
	}
}
