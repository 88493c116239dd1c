package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	domainerr "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/domain/usecase/ledger"
	"github.com/lunarbyte-dev/member-credits/internal/domain/usecase/member"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/dto"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/session"
)

// AdminHandler handles operator endpoints behind the admin token
type AdminHandler struct {
	sessions  *session.AdminSessions
	adminTTL  int64
	directory *member.Directory
	ledger    *ledger.UseCase
	pageSize  int
	logger    coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	sessions *session.AdminSessions,
	adminTTLSeconds int64,
	directory *member.Directory,
	ledgerUC *ledger.UseCase,
	pageSize int,
	logger coreport.Logger,
) *AdminHandler {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &AdminHandler{
		sessions:  sessions,
		adminTTL:  adminTTLSeconds,
		directory: directory,
		ledger:    ledgerUC,
		pageSize:  pageSize,
		logger:    logger,
	}
}

// Login handles the POST /api/admin/login endpoint
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	token, err := h.sessions.Login(req.AdminKey)
	if err != nil {
		statusCode := http.StatusUnauthorized
		message := "Invalid admin key"
		if domainerr.IsConfigurationError(err) {
			statusCode = http.StatusInternalServerError
			message = "Admin access is not configured"
		}
		h.logger.Warn("Admin login rejected", map[string]any{
			"ip":    c.ClientIP(),
			"error": err.Error(),
		})
		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{
		Token:     token,
		ExpiresIn: h.adminTTL,
	})
}

// AdjustCredits handles the POST /api/admin/credits/adjust endpoint
func (h *AdminHandler) AdjustCredits(c *gin.Context) {
	var req dto.AdminAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}
	if req.BonusAmount == 0 && !req.ForceRefresh {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Nothing to apply: set bonusAmount and/or forceRefresh",
		})
		return
	}

	target, err := h.directory.GetByID(c.Request.Context(), req.MemberID)
	if err != nil {
		h.respondError(c, req.MemberID, "adjust credits", err)
		return
	}

	resp := dto.AdminAdjustResponse{MemberID: req.MemberID}

	if req.BonusAmount != 0 {
		balance, err := h.ledger.AdminBonus(c.Request.Context(), req.MemberID, req.BonusAmount, req.Note)
		if err != nil {
			h.respondError(c, req.MemberID, "admin bonus", err)
			return
		}
		resp.Balance = balance
		resp.BonusApplied = true
	}

	if req.ForceRefresh {
		balance, err := h.ledger.AdminForceRefresh(c.Request.Context(), req.MemberID, target.IsPaid)
		if err != nil {
			h.respondError(c, req.MemberID, "admin refresh", err)
			return
		}
		resp.Balance = balance
		resp.RefreshApplied = true
	}

	h.logger.Info("Admin credit adjustment applied", map[string]any{
		"member_id":     req.MemberID,
		"bonus_amount":  req.BonusAmount,
		"force_refresh": req.ForceRefresh,
	})
	c.JSON(http.StatusOK, resp)
}

// GetMemberCredits handles the GET /api/admin/members/:id/credits endpoint
func (h *AdminHandler) GetMemberCredits(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidMemberID),
			Message: "Invalid member ID format",
		})
		return
	}

	target, err := h.directory.GetByID(c.Request.Context(), memberID)
	if err != nil {
		h.respondError(c, memberID, "get member credits", err)
		return
	}

	account, err := h.ledger.GetAccount(c.Request.Context(), memberID)
	if err != nil {
		h.respondError(c, memberID, "get member credits", err)
		return
	}

	entries, err := h.ledger.History(c.Request.Context(), memberID, h.pageSize, 0)
	if err != nil {
		h.respondError(c, memberID, "get member credits", err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminMemberCreditsResponse{
		Member:  toMemberResponse(target),
		Balance: account.Balance,
		History: lo.Map(entries, func(e *entity.CreditHistoryEntry, _ int) dto.HistoryEntryResponse { return toHistoryEntry(e) }),
	})
}

func (h *AdminHandler) respondError(c *gin.Context, memberID uint64, operation string, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"
	switch {
	case errors.Is(err, domainerr.ErrMemberNotFound):
		statusCode = http.StatusNotFound
		message = "Member not found"
	case domainerr.IsNotFoundError(err):
		statusCode = http.StatusNotFound
		message = "Credit account not found"
	}

	h.logger.Error("Admin endpoint failed", map[string]any{
		"member_id": memberID,
		"operation": operation,
		"error":     err.Error(),
	})
	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
