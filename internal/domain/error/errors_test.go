package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientCredits", ErrInsufficientCredits, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidMemberID", ErrInvalidMemberID, 4003},
		{"InvalidRequest", ErrInvalidRequest, 4005},
		{"Unauthorized", ErrUnauthorized, 4010},
		{"MemberNotFound", ErrMemberNotFound, 4040},
		{"AccountNotFound", ErrAccountNotFound, 4041},
		{"AuthFailed", ErrAuthFailed, 5020},
		{"Configuration", ErrConfiguration, 5001},
		{"Persistence", ErrPersistence, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidMemberID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError(789, 300, 150)
	if err == nil {
		t.Fatal("NewInsufficientCreditsError returned nil")
	}

	expectedMsg := "insufficient credits for member 789: required 300, available 150"
	if err.Error() != expectedMsg {
		t.Errorf("InsufficientCreditsError.Error() = %s, want %s", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrInsufficientCredits) {
		t.Errorf("errors.Is(err, ErrInsufficientCredits) = false, want true")
	}
	if !IsInsufficientCreditsError(err) {
		t.Errorf("IsInsufficientCreditsError(err) = false, want true")
	}

	var detailed *InsufficientCreditsError
	if !errors.As(err, &detailed) {
		t.Fatal("errors.As failed for *InsufficientCreditsError")
	}
	if detailed.MemberID != 789 || detailed.Cost != 300 || detailed.Balance != 150 {
		t.Errorf("unexpected detail fields: %+v", detailed)
	}

	fields := detailed.LogFields()
	if fields["error_code"] != CodeInsufficientCredits {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeInsufficientCredits)
	}
}

func TestAuthError(t *testing.T) {
	upstream := errors.New("connection refused")
	err := NewAuthError("token exchange failed", upstream)

	expectedMsg := "authentication failed: token exchange failed: connection refused"
	if err.Error() != expectedMsg {
		t.Errorf("AuthError.Error() = %s, want %s", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrAuthFailed) {
		t.Errorf("errors.Is(err, ErrAuthFailed) = false, want true")
	}
	if !errors.Is(err, upstream) {
		t.Errorf("errors.Is(err, upstream) = false, want true")
	}
	if !IsAuthError(err) {
		t.Errorf("IsAuthError(err) = false, want true")
	}

	// Without an upstream error the message stops at the detail
	bare := NewAuthError("no credential hints supplied", nil)
	if bare.Error() != "authentication failed: no credential hints supplied" {
		t.Errorf("bare AuthError.Error() = %s", bare.Error())
	}
}

func TestLedgerError(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := NewLedgerError(42, "monthly_refresh", cause)

	expectedMsg := "ledger operation monthly_refresh failed for member 42: deadlock detected"
	if err.Error() != expectedMsg {
		t.Errorf("LedgerError.Error() = %s, want %s", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrPersistence) {
		t.Errorf("errors.Is(err, ErrPersistence) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if !IsPersistenceError(err) {
		t.Errorf("IsPersistenceError(err) = false, want true")
	}
	if ErrorCode(err) != CodePersistence {
		t.Errorf("ErrorCode(err) = %d, want %d", ErrorCode(err), CodePersistence)
	}
}

func TestIsNotFoundError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"NotFound", ErrNotFound, true},
		{"MemberNotFound", ErrMemberNotFound, true},
		{"AccountNotFound", ErrAccountNotFound, true},
		{"WrappedAccountNotFound", fmt.Errorf("load: %w", ErrAccountNotFound), true},
		{"Unrelated", ErrInvalidAmount, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotFoundError(tc.err); got != tc.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}
