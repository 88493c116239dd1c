package ledger

import (
	"context"
	"errors"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
	"github.com/lunarbyte-dev/member-credits/internal/domain/port/persistence"
)

// Config holds the configured credit amounts per tier
type Config struct {
	InitialFree int64
	InitialPaid int64
	MonthlyFree int64
	MonthlyPaid int64
}

// UpgradeBonus is the one-time credit awarded on a free-to-paid transition
func (c Config) UpgradeBonus() int64 {
	return c.InitialPaid - c.InitialFree
}

// InitialFor returns the opening grant for a tier
func (c Config) InitialFor(isPaid bool) int64 {
	if isPaid {
		return c.InitialPaid
	}
	return c.InitialFree
}

// MonthlyFor returns the monthly refresh amount for a tier
func (c Config) MonthlyFor(isPaid bool) int64 {
	if isPaid {
		return c.MonthlyPaid
	}
	return c.MonthlyFree
}

// UseCase owns every balance mutation. Each operation runs inside one unit
// of work: the account row is locked FOR UPDATE, the balance is recomputed,
// and the history rows are appended before the commit. Concurrent mutators
// for the same member serialize on the row lock.
type UseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewUseCase creates the ledger use case
func NewUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *UseCase {
	return &UseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// GetAccount returns the account for balance reads, without locking
func (u *UseCase) GetAccount(ctx context.Context, memberID uint64) (*entity.CreditAccount, error) {
	if memberID == 0 {
		return nil, errs.ErrInvalidMemberID
	}
	return u.uow.GetCreditAccountRepository(ctx).GetByMemberID(ctx, memberID)
}

// History returns the change log for a member, newest first
func (u *UseCase) History(ctx context.Context, memberID uint64, limit, offset int) ([]*entity.CreditHistoryEntry, error) {
	if memberID == 0 {
		return nil, errs.ErrInvalidMemberID
	}
	return u.uow.GetCreditHistoryRepository(ctx).ListByMember(ctx, memberID, limit, offset)
}

// Actions returns the action audit log for a member, newest first
func (u *UseCase) Actions(ctx context.Context, memberID uint64, limit, offset int) ([]*entity.Action, error) {
	if memberID == 0 {
		return nil, errs.ErrInvalidMemberID
	}
	return u.uow.GetActionRepository(ctx).ListByMember(ctx, memberID, limit, offset)
}

// mutation is executed with the account row locked inside an open transaction
type mutation func(txCtx context.Context, account *entity.CreditAccount) error

// withLockedAccount runs fn against the member's account under a row lock,
// committing on success and rolling back on any error. When createIfMissing
// is set a zero-balance account is inserted first, so the opening grant is
// recorded like every other change.
func (u *UseCase) withLockedAccount(
	ctx context.Context,
	memberID uint64,
	operation string,
	createIfMissing bool,
	fn mutation,
) error {
	if memberID == 0 {
		return errs.ErrInvalidMemberID
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return errs.NewLedgerError(memberID, operation, err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
				u.logger.Error("Failed to roll back ledger transaction", map[string]any{
					"member_id": memberID,
					"operation": operation,
					"error":     rbErr.Error(),
				})
			}
		}
	}()

	accountRepo := u.uow.GetCreditAccountRepository(txCtx)
	account, err := accountRepo.GetByMemberIDForUpdate(txCtx, memberID)
	if err != nil {
		if !errors.Is(err, errs.ErrAccountNotFound) || !createIfMissing {
			return err
		}
		account, err = entity.NewCreditAccount(memberID, u.timeProvider)
		if err != nil {
			return err
		}
		if err := accountRepo.Create(txCtx, account); err != nil {
			return errs.NewLedgerError(memberID, operation, err)
		}
	}

	if err := fn(txCtx, account); err != nil {
		return err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return errs.NewLedgerError(memberID, operation, err)
	}
	committed = true
	return nil
}

// applyAndRecord updates the locked account and appends the matching
// history entry. balanceAfter always equals the persisted balance.
func (u *UseCase) applyAndRecord(
	txCtx context.Context,
	account *entity.CreditAccount,
	change int64,
	changeType entity.ChangeType,
	note string,
) (int64, error) {
	balance, err := account.Apply(change, u.timeProvider)
	if err != nil {
		return account.Balance, err
	}

	if err := u.uow.GetCreditAccountRepository(txCtx).Update(txCtx, account); err != nil {
		return balance, errs.NewLedgerError(account.MemberID, string(changeType), err)
	}

	entry := entity.NewCreditHistoryEntry(
		account.MemberID, change, changeType, balance, note, u.timeProvider)
	if err := u.uow.GetCreditHistoryRepository(txCtx).Append(txCtx, entry); err != nil {
		return balance, errs.NewLedgerError(account.MemberID, string(changeType), err)
	}

	return balance, nil
}
