// Package transaction implements the ledger operations on an account's
// transaction log: appending entries, reading history and balance,
// transferring between accounts and reverting an entry.
//
// Every mutating operation reads the balance, checks it, then writes. By
// default these steps are neither locked nor wrapped in a database
// transaction; WithLocker and WithAtomicWrites close those gaps.
package transaction

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/lock"
	"github.com/amirasaad/ledger/pkg/repository"
	accountrepo "github.com/amirasaad/ledger/pkg/repository/account"
	transactionrepo "github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Service provides the ledger operations.
type Service struct {
	uow      repository.UnitOfWork
	bus      eventbus.Bus
	locker   lock.Locker
	logger   *slog.Logger
	atomic   bool
	now      func() time.Time
	balances singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithLocker serializes mutating operations per account.
func WithLocker(l lock.Locker) Option {
	return func(s *Service) {
		if l != nil {
			s.locker = l
		}
	}
}

// WithAtomicWrites runs each mutating operation inside one database
// transaction.
func WithAtomicWrites(atomic bool) Option {
	return func(s *Service) { s.atomic = atomic }
}

// WithClock overrides the time source used for reversal stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a new Service.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		uow:    uow,
		bus:    bus,
		locker: lock.Noop{},
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reversal is the outcome of ExecRevert: the compensating entry and the
// value of the entry it reverses.
type Reversal struct {
	Refund        *ledger.Transaction
	OriginalValue decimal.Decimal
}

// CreateOne appends a single entry to accountID's log. A negative value is a
// debit and must be covered by the current balance.
func (s *Service) CreateOne(
	ctx context.Context,
	accountID uuid.UUID,
	value decimal.Decimal,
	description string,
) (*ledger.Transaction, error) {
	log := s.logger.With("op", "CreateOne", "account_id", accountID, "value", value.String())
	if err := ledger.ValidateEntry(value, description); err != nil {
		log.Warn("rejected entry", "error", err)
		return nil, err
	}

	release, err := s.locker.Lock(ctx, accountID.String())
	if err != nil {
		log.Error("failed to lock account", "error", err)
		return nil, err
	}
	defer release()

	var created *ledger.Transaction
	err = s.write(ctx, func(uow repository.UnitOfWork) error {
		txRepo, accRepo, err := repos(uow)
		if err != nil {
			return err
		}
		balance, err := balanceOf(ctx, txRepo, accountID)
		if err != nil {
			return err
		}
		if !ledger.CanApply(balance, value) {
			return ledger.ErrInsufficientFunds
		}
		if err := requireAccounts(ctx, accRepo, accountID); err != nil {
			return err
		}
		created, err = txRepo.Create(ctx, dto.TransactionCreate{
			ID:          uuid.New(),
			AccountID:   accountID,
			Value:       value,
			Description: description,
		})
		return err
	})
	if err != nil {
		logFailure(log, err)
		return nil, err
	}
	s.balances.Forget(accountID.String())
	log.Info("transaction created", "transaction_id", created.ID)

	s.emit(ctx, log, ledger.TransactionCreated{
		TransactionID: created.ID,
		AccountID:     accountID,
		Value:         created.Value,
		Description:   created.Description,
		OccurredAt:    created.CreatedAt,
	})
	return created, nil
}

// FetchAll returns accountID's entries in creation order.
func (s *Service) FetchAll(ctx context.Context, accountID uuid.UUID) ([]*ledger.Transaction, error) {
	txRepo, accRepo, err := repos(s.uow)
	if err != nil {
		return nil, err
	}
	if err := requireAccounts(ctx, accRepo, accountID); err != nil {
		return nil, err
	}
	return txRepo.ListByAccount(ctx, accountID)
}

// FetchBalance returns accountID's balance rounded to two decimals.
// Concurrent calls for the same account share one read.
func (s *Service) FetchBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	// The shared read outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.balances.Do(accountID.String(), func() (any, error) {
		txRepo, accRepo, err := repos(s.uow)
		if err != nil {
			return nil, err
		}
		if err := requireAccounts(shared, accRepo, accountID); err != nil {
			return nil, err
		}
		return balanceOf(shared, txRepo, accountID)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.Round(v.(decimal.Decimal)), nil
}

// ExecTransfer moves value from accountID to receiverAccountID by writing a
// debit on the sender and a credit on the receiver with the same
// description. It returns the receiver's entry.
func (s *Service) ExecTransfer(
	ctx context.Context,
	accountID, receiverAccountID uuid.UUID,
	value decimal.Decimal,
	description string,
) (*ledger.Transaction, error) {
	log := s.logger.With(
		"op", "ExecTransfer",
		"account_id", accountID,
		"receiver_account_id", receiverAccountID,
		"value", value.String(),
	)
	if receiverAccountID == uuid.Nil || !value.IsPositive() || strings.TrimSpace(description) == "" {
		log.Warn("rejected transfer", "error", ledger.ErrValidation)
		return nil, ledger.ErrValidation
	}

	release, err := s.locker.Lock(ctx, accountID.String(), receiverAccountID.String())
	if err != nil {
		log.Error("failed to lock accounts", "error", err)
		return nil, err
	}
	defer release()

	var sent, received *ledger.Transaction
	err = s.write(ctx, func(uow repository.UnitOfWork) error {
		txRepo, accRepo, err := repos(uow)
		if err != nil {
			return err
		}
		balance, err := balanceOf(ctx, txRepo, accountID)
		if err != nil {
			return err
		}
		if !ledger.CanApply(balance, value.Neg()) {
			return ledger.ErrInsufficientTransferFunds
		}
		if err := requireAccounts(ctx, accRepo, accountID, receiverAccountID); err != nil {
			return err
		}
		sent, err = txRepo.Create(ctx, dto.TransactionCreate{
			ID:          uuid.New(),
			AccountID:   accountID,
			Value:       value.Neg(),
			Description: description,
		})
		if err != nil {
			return err
		}
		received, err = txRepo.Create(ctx, dto.TransactionCreate{
			ID:          uuid.New(),
			AccountID:   receiverAccountID,
			Value:       value,
			Description: description,
		})
		return err
	})
	if err != nil {
		logFailure(log, err)
		return nil, err
	}
	s.balances.Forget(accountID.String())
	s.balances.Forget(receiverAccountID.String())
	log.Info("transfer completed", "sender_transaction_id", sent.ID, "receiver_transaction_id", received.ID)

	s.emit(ctx, log, ledger.TransferCompleted{
		SenderTransactionID:   sent.ID,
		ReceiverTransactionID: received.ID,
		SenderAccountID:       accountID,
		ReceiverAccountID:     receiverAccountID,
		Value:                 value,
		Description:           description,
		OccurredAt:            received.CreatedAt,
	})
	return received, nil
}

// ExecRevert cancels transactionID by stamping it reversed and appending a
// compensating entry to accountID. An entry can be reverted once.
func (s *Service) ExecRevert(
	ctx context.Context,
	accountID, transactionID uuid.UUID,
) (*Reversal, error) {
	log := s.logger.With("op", "ExecRevert", "account_id", accountID, "transaction_id", transactionID)

	release, err := s.locker.Lock(ctx, accountID.String())
	if err != nil {
		log.Error("failed to lock account", "error", err)
		return nil, err
	}
	defer release()

	var (
		original *ledger.Transaction
		refund   *ledger.Transaction
	)
	err = s.write(ctx, func(uow repository.UnitOfWork) error {
		txRepo, accRepo, err := repos(uow)
		if err != nil {
			return err
		}
		history, err := txRepo.ListByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		original, err = txRepo.Get(ctx, transactionID)
		if errors.Is(err, domain.ErrNotFound) {
			return ledger.ErrTransactionNotFound
		}
		if err != nil {
			return err
		}
		// Another account's entry is reported as missing.
		if original.AccountID != accountID {
			return ledger.ErrTransactionNotFound
		}
		if original.Reversed() {
			return ledger.ErrAlreadyReversed
		}
		reversedValue := original.ReversedValue()
		if !ledger.CanApply(ledger.Balance(history), reversedValue) {
			return ledger.ErrNegativeBalance
		}
		if err := requireAccounts(ctx, accRepo, accountID); err != nil {
			return err
		}

		revertedAt := s.now().UTC().Truncate(time.Microsecond)
		err = txRepo.Update(ctx, transactionID, dto.TransactionUpdate{ReversedAt: &revertedAt})
		if errors.Is(err, domain.ErrNotFound) {
			// Someone else stamped it between our read and this write.
			return ledger.ErrAlreadyReversed
		}
		if err != nil {
			return err
		}
		refund, err = txRepo.Create(ctx, dto.TransactionCreate{
			ID:          uuid.New(),
			AccountID:   accountID,
			Value:       ledger.Round(reversedValue),
			Description: ledger.RefundDescription,
			ReversedAt:  &revertedAt,
		})
		return err
	})
	if err != nil {
		logFailure(log, err)
		return nil, err
	}
	s.balances.Forget(accountID.String())
	log.Info("transaction reverted", "refund_transaction_id", refund.ID)

	s.emit(ctx, log, ledger.TransactionReverted{
		OriginalTransactionID: original.ID,
		RefundTransactionID:   refund.ID,
		AccountID:             accountID,
		Value:                 refund.Value,
		ReversedAt:            *refund.ReversedAt,
	})
	return &Reversal{Refund: refund, OriginalValue: original.Value}, nil
}

// write runs fn on the plain session, or inside one database transaction
// when atomic writes are on.
func (s *Service) write(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if s.atomic {
		return s.uow.Do(ctx, fn)
	}
	return fn(s.uow)
}

func (s *Service) emit(ctx context.Context, log *slog.Logger, event eventbus.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, event); err != nil {
		log.Error("failed to emit event", "type", event.Type(), "error", err)
	}
}

func repos(uow repository.UnitOfWork) (transactionrepo.Repository, accountrepo.Repository, error) {
	txRepo, err := repository.Resolve[transactionrepo.Repository](uow)
	if err != nil {
		return nil, nil, err
	}
	accRepo, err := repository.Resolve[accountrepo.Repository](uow)
	if err != nil {
		return nil, nil, err
	}
	return txRepo, accRepo, nil
}

func balanceOf(ctx context.Context, repo transactionrepo.Repository, accountID uuid.UUID) (decimal.Decimal, error) {
	txs, err := repo.ListByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.Balance(txs), nil
}

func requireAccounts(ctx context.Context, repo accountrepo.Repository, ids ...uuid.UUID) error {
	for _, id := range ids {
		ok, err := repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ledger.ErrAccountNotFound
		}
	}
	return nil
}

// logFailure logs business rejections as warnings and everything else as errors.
func logFailure(log *slog.Logger, err error) {
	var ledgerErr *ledger.Error
	if errors.As(err, &ledgerErr) {
		log.Warn("operation rejected", "error", err)
		return
	}
	log.Error("operation failed", "error", err)
}
