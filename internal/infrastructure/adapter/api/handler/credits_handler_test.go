package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	domainerr "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	"github.com/lunarbyte-dev/member-credits/internal/domain/usecase/ledger"
	"github.com/lunarbyte-dev/member-credits/internal/domain/usecase/metering"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/dto"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/middleware"
	coremocks "github.com/lunarbyte-dev/member-credits/mocks/port/core"
	persistencemocks "github.com/lunarbyte-dev/member-credits/mocks/port/persistence"
)

type creditsHandlerFixture struct {
	accounts *persistencemocks.MockCreditAccountRepository
	logger   *coremocks.MockLogger
	h        *CreditsHandler
}

func newCreditsHandlerFixture(t *testing.T) *creditsHandlerFixture {
	gin.SetMode(gin.TestMode)

	f := &creditsHandlerFixture{
		accounts: persistencemocks.NewMockCreditAccountRepository(t),
		logger:   coremocks.NewMockLogger(t),
	}

	uow := persistencemocks.NewMockUnitOfWork(t)
	uow.EXPECT().GetCreditAccountRepository(mock.Anything).Return(f.accounts).Maybe()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)).Maybe()

	ledgerUC := ledger.NewUseCase(uow, mockTime, f.logger, ledger.Config{
		InitialFree: 100,
		InitialPaid: 500,
		MonthlyFree: 50,
		MonthlyPaid: 300,
	})
	f.h = NewCreditsHandler(metering.NewUseCase(ledgerUC, f.logger), 50, f.logger)
	return f
}

func testContext(t *testing.T, memberID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/credits/balance", nil)
	c.Set(middleware.ContextMemberID, memberID)
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetBalance(t *testing.T) {
	t.Run("Returns the account state", func(t *testing.T) {
		f := newCreditsHandlerFixture(t)
		refreshed := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		f.accounts.EXPECT().GetByMemberID(mock.Anything, uint64(7)).
			Return(&entity.CreditAccount{MemberID: 7, Balance: 80, LastRefreshedAt: refreshed}, nil).Once()

		c, rec := testContext(t, 7)
		f.h.GetBalance(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body dto.BalanceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, uint64(7), body.MemberID)
		assert.Equal(t, int64(80), body.Balance)
		assert.True(t, refreshed.Equal(body.LastRefreshedAt))
	})

	t.Run("Missing account maps to 404", func(t *testing.T) {
		f := newCreditsHandlerFixture(t)
		f.accounts.EXPECT().GetByMemberID(mock.Anything, uint64(7)).
			Return(nil, domainerr.ErrAccountNotFound).Once()
		f.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		c, rec := testContext(t, 7)
		f.h.GetBalance(c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, domainerr.CodeAccountNotFound, body.Code)
	})

	t.Run("Missing session context maps to 401", func(t *testing.T) {
		f := newCreditsHandlerFixture(t)
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/credits/balance", nil)

		f.h.GetBalance(c)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{
			name:       "Account not found",
			err:        domainerr.ErrAccountNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   domainerr.CodeAccountNotFound,
		},
		{
			name:       "Invalid amount is a client error",
			err:        domainerr.ErrInvalidAmount,
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerr.CodeInvalidAmount,
		},
		{
			name:       "Wrapped invalid request is a client error",
			err:        fmt.Errorf("spend: %w", domainerr.ErrInvalidRequest),
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerr.CodeInvalidRequest,
		},
		{
			name:       "Unknown failures stay internal",
			err:        domainerr.ErrDatabaseConnection,
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerr.CodeInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreditsHandlerFixture(t)
			f.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

			c, rec := testContext(t, 7)
			f.h.respondError(c, 7, "spend", tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				// Internals never leak upstream error text
				assert.Equal(t, "Internal server error", body.Message)
			} else {
				assert.NotEmpty(t, body.Message)
			}
		})
	}
}
