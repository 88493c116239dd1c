package metering

import (
	"context"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/domain/usecase/ledger"
)

// SpendResult reports a successful spend
type SpendResult struct {
	Action           *entity.Action
	RemainingBalance int64
}

// UseCase meters credit spending for feature code, independent of the
// authentication flow
type UseCase struct {
	ledger *ledger.UseCase
	logger coreport.Logger
}

// NewUseCase creates the metering use case
func NewUseCase(ledgerUC *ledger.UseCase, logger coreport.Logger) *UseCase {
	return &UseCase{
		ledger: ledgerUC,
		logger: logger,
	}
}

// Spend debits the ledger for a declared action. The action row exists only
// when the debit succeeds; an insufficient balance leaves no audit trace.
//
// Possible errors:
// - ErrInsufficientCredits: balance is below the cost
// - ErrAccountNotFound: the member has no credit account
func (u *UseCase) Spend(
	ctx context.Context,
	memberID uint64,
	actionType string,
	cost int64,
	metadata map[string]any,
) (*SpendResult, error) {
	if actionType == "" {
		return nil, errs.ErrInvalidRequest
	}

	action, balance, err := u.ledger.Debit(ctx, memberID, cost, actionType, metadata)
	if err != nil {
		return nil, err
	}

	return &SpendResult{
		Action:           action,
		RemainingBalance: balance,
	}, nil
}

// Balance returns the current balance and refresh baseline for a member
func (u *UseCase) Balance(ctx context.Context, memberID uint64) (*entity.CreditAccount, error) {
	return u.ledger.GetAccount(ctx, memberID)
}

// History returns the credit change log, newest first
func (u *UseCase) History(ctx context.Context, memberID uint64, limit, offset int) ([]*entity.CreditHistoryEntry, error) {
	return u.ledger.History(ctx, memberID, limit, offset)
}

// Actions returns the action audit log, newest first
func (u *UseCase) Actions(ctx context.Context, memberID uint64, limit, offset int) ([]*entity.Action, error) {
	return u.ledger.Actions(ctx, memberID, limit, offset)
}
