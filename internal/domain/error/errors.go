package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientCredits = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidMemberID     = 4003
	CodeInvalidRequest      = 4005
	CodeUnauthorized        = 4010
	CodeMemberNotFound      = 4040
	CodeAccountNotFound     = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeConfiguration  = 5001
	CodeAuthExchange   = 5020
	CodePersistence    = 5030
)

// Base error types
var (
	// ErrAuthFailed is returned when the upstream identity exchange rejects or is unreachable
	ErrAuthFailed = errors.New("identity provider authentication failed")

	// ErrConfiguration is returned when a required credential or token is not configured
	ErrConfiguration = errors.New("required configuration is missing")

	// ErrInsufficientCredits is returned when a debit exceeds the available balance
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrInvalidAmount is returned when a credit amount is zero or negative
	ErrInvalidAmount = errors.New("credit amount must be positive")

	// ErrInvalidMemberID is returned when the member ID is not a positive integer
	ErrInvalidMemberID = errors.New("member ID must be positive")

	// ErrMemberNotFound is returned when the requested member doesn't exist
	ErrMemberNotFound = errors.New("member not found")

	// ErrAccountNotFound is returned when a member has no credit account yet
	ErrAccountNotFound = errors.New("credit account not found")

	// ErrPersistence is returned when committing a ledger mutation fails
	ErrPersistence = errors.New("ledger persistence failure")

	// ErrDuplicateMember is returned when a member with the same external ID already exists
	ErrDuplicateMember = errors.New("member already exists")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when a session or admin token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidMemberID):
		return CodeInvalidMemberID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrMemberNotFound):
		return CodeMemberNotFound
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrAuthFailed):
		return CodeAuthExchange
	case errors.Is(err, ErrConfiguration):
		return CodeConfiguration
	case errors.Is(err, ErrPersistence):
		return CodePersistence
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditsError provides detailed error information for a rejected debit
type InsufficientCreditsError struct {
	MemberID uint64
	Cost     int64
	Balance  int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for member %d: required %d, available %d",
		e.MemberID, e.Cost, e.Balance)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"member_id":  e.MemberID,
		"cost":       e.Cost,
		"balance":    e.Balance,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(memberID uint64, cost, balance int64) error {
	return &InsufficientCreditsError{
		MemberID: memberID,
		Cost:     cost,
		Balance:  balance,
	}
}

// AuthError carries the upstream detail of a failed identity exchange
type AuthError struct {
	Detail string
	Err    error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Detail)
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrAuthFailed
func (e *AuthError) Is(target error) bool {
	return target == ErrAuthFailed
}

// LogFields returns a map of fields for structured logging
func (e *AuthError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "auth_error",
		"detail":     e.Detail,
		"error_code": CodeAuthExchange,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewAuthError creates an AuthError wrapping the upstream failure
func NewAuthError(detail string, err error) error {
	return &AuthError{Detail: detail, Err: err}
}

// LedgerError represents a failure while committing a ledger operation
type LedgerError struct {
	MemberID  uint64
	Operation string
	Err       error
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger operation %s failed for member %d: %v",
		e.Operation, e.MemberID, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrPersistence
func (e *LedgerError) Is(target error) bool {
	return target == ErrPersistence
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"member_id":  e.MemberID,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodePersistence,
	}
}

// NewLedgerError creates a LedgerError for a failed ledger operation
func NewLedgerError(memberID uint64, operation string, err error) error {
	return &LedgerError{MemberID: memberID, Operation: operation, Err: err}
}

// IsInsufficientCreditsError checks if the error is an insufficient credits error
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsAuthError checks if the error originates in the identity exchange
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthFailed)
}

// IsConfigurationError checks if the error is a missing configuration fault
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsPersistenceError checks if the error is a ledger persistence failure
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// IsMemberNotFoundError checks if the error is a member not found error
func IsMemberNotFoundError(err error) bool {
	return errors.Is(err, ErrMemberNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrMemberNotFound) ||
		errors.Is(err, ErrAccountNotFound)
}
