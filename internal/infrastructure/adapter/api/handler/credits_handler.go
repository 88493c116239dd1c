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
	"github.com/lunarbyte-dev/member-credits/internal/domain/usecase/metering"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/dto"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/middleware"
)

// CreditsHandler handles member-facing credit endpoints
type CreditsHandler struct {
	metering *metering.UseCase
	pageSize int
	logger   coreport.Logger
}

// NewCreditsHandler creates a new credits handler instance
func NewCreditsHandler(meteringUC *metering.UseCase, pageSize int, logger coreport.Logger) *CreditsHandler {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &CreditsHandler{
		metering: meteringUC,
		pageSize: pageSize,
		logger:   logger,
	}
}

// GetBalance handles the GET /api/credits/balance endpoint
func (h *CreditsHandler) GetBalance(c *gin.Context) {
	memberID, ok := middleware.MemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Unauthorized",
		})
		return
	}

	account, err := h.metering.Balance(c.Request.Context(), memberID)
	if err != nil {
		h.respondError(c, memberID, "get balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		MemberID:        account.MemberID,
		Balance:         account.Balance,
		LastRefreshedAt: account.LastRefreshedAt,
	})
}

// Spend handles the POST /api/credits/spend endpoint
func (h *CreditsHandler) Spend(c *gin.Context) {
	memberID, ok := middleware.MemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Unauthorized",
		})
		return
	}

	var req dto.SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.metering.Spend(c.Request.Context(), memberID, req.ActionType, req.Cost, req.Metadata)
	if err != nil {
		if domainerr.IsInsufficientCreditsError(err) {
			c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: err.Error(),
			})
			return
		}
		h.respondError(c, memberID, "spend", err)
		return
	}

	c.JSON(http.StatusOK, dto.SpendResponse{
		ActionID:         result.Action.ID,
		ActionType:       result.Action.ActionType,
		CreditsCost:      result.Action.CreditsCost,
		RemainingBalance: result.RemainingBalance,
	})
}

// GetHistory handles the GET /api/credits/history endpoint
func (h *CreditsHandler) GetHistory(c *gin.Context) {
	memberID, ok := middleware.MemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Unauthorized",
		})
		return
	}

	limit, offset := h.pagination(c)
	entries, err := h.metering.History(c.Request.Context(), memberID, limit, offset)
	if err != nil {
		h.respondError(c, memberID, "get history", err)
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		MemberID: memberID,
		Entries:  lo.Map(entries, func(e *entity.CreditHistoryEntry, _ int) dto.HistoryEntryResponse { return toHistoryEntry(e) }),
		Limit:    limit,
		Offset:   offset,
	})
}

// GetActions handles the GET /api/actions endpoint
func (h *CreditsHandler) GetActions(c *gin.Context) {
	memberID, ok := middleware.MemberIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Unauthorized",
		})
		return
	}

	limit, offset := h.pagination(c)
	actions, err := h.metering.Actions(c.Request.Context(), memberID, limit, offset)
	if err != nil {
		h.respondError(c, memberID, "get actions", err)
		return
	}

	c.JSON(http.StatusOK, dto.ActionsResponse{
		MemberID: memberID,
		Actions: lo.Map(actions, func(a *entity.Action, _ int) dto.ActionResponse {
			return dto.ActionResponse{
				ID:          a.ID,
				ActionType:  a.ActionType,
				CreditsCost: a.CreditsCost,
				Metadata:    a.Metadata,
				Success:     a.Success,
				CreatedAt:   a.CreatedAt,
			}
		}),
		Limit:  limit,
		Offset: offset,
	})
}

// pagination extracts limit/offset query parameters with configured defaults
func (h *CreditsHandler) pagination(c *gin.Context) (int, int) {
	limit := h.pageSize
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= h.pageSize {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

func (h *CreditsHandler) respondError(c *gin.Context, memberID uint64, operation string, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"
	switch {
	case domainerr.IsNotFoundError(err):
		statusCode = http.StatusNotFound
		message = "Credit account not found"
	case errors.Is(err, domainerr.ErrInvalidAmount), errors.Is(err, domainerr.ErrInvalidRequest):
		statusCode = http.StatusBadRequest
		message = err.Error()
	}

	h.logger.Error("Credit endpoint failed", map[string]any{
		"member_id": memberID,
		"operation": operation,
		"error":     err.Error(),
	})
	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// toHistoryEntry maps a history entity to its API shape
func toHistoryEntry(e *entity.CreditHistoryEntry) dto.HistoryEntryResponse {
	return dto.HistoryEntryResponse{
		ID:           e.ID,
		ChangeAmount: e.ChangeAmount,
		ChangeType:   string(e.ChangeType),
		BalanceAfter: e.BalanceAfter,
		ActionID:     e.ActionID,
		Note:         e.Note,
		CreatedAt:    e.CreatedAt,
	}
}
