package transaction_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	txsvc "github.com/amirasaad/ledger/pkg/service/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc     *txsvc.Service
	uow     *mocks.MockUnitOfWork
	txRepo  *mocks.MockTransactionRepository
	accRepo *mocks.MockAccountRepository
	bus     *mocks.MockBus
}

func newFixture(t *testing.T, opts ...txsvc.Option) *fixture {
	f := &fixture{
		uow:     mocks.NewMockUnitOfWork(t),
		txRepo:  mocks.NewMockTransactionRepository(t),
		accRepo: mocks.NewMockAccountRepository(t),
		bus:     mocks.NewMockBus(t),
	}
	f.uow.EXPECT().GetRepository(mock.AnythingOfType("*transaction.Repository")).Return(f.txRepo, nil).Maybe()
	f.uow.EXPECT().GetRepository(mock.AnythingOfType("*account.Repository")).Return(f.accRepo, nil).Maybe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = txsvc.New(f.uow, f.bus, logger, opts...)
	return f
}

func entries(values ...string) []*ledger.Transaction {
	out := make([]*ledger.Transaction, 0, len(values))
	for _, v := range values {
		out = append(out, &ledger.Transaction{ID: uuid.New(), Value: decimal.RequireFromString(v)})
	}
	return out
}

func TestCreateOne_Success(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()
	now := time.Now()

	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(entries("100"), nil).Once()
	f.accRepo.EXPECT().Exists(mock.Anything, accountID).Return(true, nil).Once()
	f.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c dto.TransactionCreate) bool {
		return c.AccountID == accountID && c.Value.Equal(decimal.NewFromInt(-40)) && c.Description == "rent" &&
			c.ID != uuid.Nil && c.ReversedAt == nil
	})).RunAndReturn(func(_ context.Context, c dto.TransactionCreate) (*ledger.Transaction, error) {
		return &ledger.Transaction{ID: c.ID, AccountID: c.AccountID, Value: c.Value, Description: c.Description, CreatedAt: now, UpdatedAt: now}, nil
	}).Once()
	f.bus.EXPECT().Emit(mock.Anything, mock.AnythingOfType("ledger.TransactionCreated")).Return(nil).Once()

	tx, err := f.svc.CreateOne(context.Background(), accountID, decimal.NewFromInt(-40), "rent")
	require.NoError(t, err)
	assert.Equal(t, "-40", tx.Value.String())
	assert.Equal(t, now, tx.CreatedAt)
}

func TestCreateOne_Validation(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateOne(context.Background(), uuid.New(), decimal.Zero, "deposit")
	assert.ErrorIs(t, err, ledger.ErrValidation)
	_, err = f.svc.CreateOne(context.Background(), uuid.New(), decimal.NewFromInt(1), " ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateOne_FundsCheckedBeforeAccountExistence(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()

	// No Exists expectation: an unknown account with an empty log reports
	// insufficient funds first.
	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(nil, nil).Once()

	_, err := f.svc.CreateOne(context.Background(), accountID, decimal.NewFromInt(-1), "withdraw")
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	assert.Equal(t, "Insufficient funds for that transaction", err.Error())
}

func TestCreateOne_UnknownAccount(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()

	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(nil, nil).Once()
	f.accRepo.EXPECT().Exists(mock.Anything, accountID).Return(false, nil).Once()

	_, err := f.svc.CreateOne(context.Background(), accountID, decimal.NewFromInt(10), "deposit")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateOne_RepositoryError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("db down")
	f.txRepo.EXPECT().ListByAccount(mock.Anything, mock.Anything).Return(nil, boom).Once()

	_, err := f.svc.CreateOne(context.Background(), uuid.New(), decimal.NewFromInt(10), "deposit")
	assert.ErrorIs(t, err, boom)
}

func TestCreateOne_AtomicWritesUseUnitOfWork(t *testing.T) {
	f := newFixture(t, txsvc.WithAtomicWrites(true))
	accountID := uuid.New()

	f.uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(f.uow)
		},
	).Once()
	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(nil, nil).Once()
	f.accRepo.EXPECT().Exists(mock.Anything, accountID).Return(true, nil).Once()
	f.txRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, c dto.TransactionCreate) (*ledger.Transaction, error) {
			return &ledger.Transaction{ID: c.ID, AccountID: c.AccountID, Value: c.Value, Description: c.Description}, nil
		},
	).Once()
	f.bus.EXPECT().Emit(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.svc.CreateOne(context.Background(), accountID, decimal.NewFromInt(10), "deposit")
	require.NoError(t, err)
}

func TestCreateOne_EmitFailureDoesNotFailWrite(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()

	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(nil, nil).Once()
	f.accRepo.EXPECT().Exists(mock.Anything, accountID).Return(true, nil).Once()
	f.txRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, c dto.TransactionCreate) (*ledger.Transaction, error) {
			return &ledger.Transaction{ID: c.ID, Value: c.Value}, nil
		},
	).Once()
	f.bus.EXPECT().Emit(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	tx, err := f.svc.CreateOne(context.Background(), accountID, decimal.NewFromInt(10), "deposit")
	require.NoError(t, err)
	assert.NotNil(t, tx)
}

func TestFetchBalance_Rounds(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()

	f.accRepo.EXPECT().Exists(mock.Anything, accountID).Return(true, nil).Once()
	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(entries("10.005", "0.001", "-5"), nil).Once()

	balance, err := f.svc.FetchBalance(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, "5.01", balance.String())
}

func TestFetchBalance_SharedReadIgnoresCallerCancellation(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.accRepo.EXPECT().Exists(mock.Anything, accountID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) (bool, error) {
			return true, ctx.Err()
		}).Once()
	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) ([]*ledger.Transaction, error) {
			return entries("12.5"), ctx.Err()
		}).Once()

	balance, err := f.svc.FetchBalance(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "12.5", balance.String())
}

func TestFetchAll_UnknownAccount(t *testing.T) {
	f := newFixture(t)
	f.accRepo.EXPECT().Exists(mock.Anything, mock.Anything).Return(false, nil).Once()

	_, err := f.svc.FetchAll(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestExecTransfer_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sender, receiver := uuid.New(), uuid.New()

	_, err := f.svc.ExecTransfer(ctx, sender, uuid.Nil, decimal.NewFromInt(1), "x")
	assert.ErrorIs(t, err, ledger.ErrValidation)
	_, err = f.svc.ExecTransfer(ctx, sender, receiver, decimal.NewFromInt(-1), "x")
	assert.ErrorIs(t, err, ledger.ErrValidation)
	_, err = f.svc.ExecTransfer(ctx, sender, receiver, decimal.Zero, "x")
	assert.ErrorIs(t, err, ledger.ErrValidation)
	_, err = f.svc.ExecTransfer(ctx, sender, receiver, decimal.NewFromInt(1), "")
	assert.ErrorIs(t, err, ledger.ErrValidation)
}

func TestExecTransfer_InsufficientFunds(t *testing.T) {
	f := newFixture(t)
	sender, receiver := uuid.New(), uuid.New()
	f.txRepo.EXPECT().ListByAccount(mock.Anything, sender).Return(entries("50"), nil).Once()

	_, err := f.svc.ExecTransfer(context.Background(), sender, receiver, decimal.RequireFromString("50.01"), "x")
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	assert.Equal(t, "Insufficient funds for transfer", err.Error())
}

func TestExecTransfer_UnknownReceiver(t *testing.T) {
	f := newFixture(t)
	sender, receiver := uuid.New(), uuid.New()
	f.txRepo.EXPECT().ListByAccount(mock.Anything, sender).Return(entries("50"), nil).Once()
	f.accRepo.EXPECT().Exists(mock.Anything, sender).Return(true, nil).Once()
	f.accRepo.EXPECT().Exists(mock.Anything, receiver).Return(false, nil).Once()

	_, err := f.svc.ExecTransfer(context.Background(), sender, receiver, decimal.NewFromInt(10), "x")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestExecTransfer_WritesBothLegs(t *testing.T) {
	f := newFixture(t)
	sender, receiver := uuid.New(), uuid.New()
	value := decimal.RequireFromString("35.53")

	f.txRepo.EXPECT().ListByAccount(mock.Anything, sender).Return(entries("50"), nil).Once()
	f.accRepo.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil).Twice()
	var legs []dto.TransactionCreate
	f.txRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, c dto.TransactionCreate) (*ledger.Transaction, error) {
			legs = append(legs, c)
			return &ledger.Transaction{ID: c.ID, AccountID: c.AccountID, Value: c.Value, Description: c.Description}, nil
		},
	).Twice()
	f.bus.EXPECT().Emit(mock.Anything, mock.AnythingOfType("ledger.TransferCompleted")).Return(nil).Once()

	got, err := f.svc.ExecTransfer(context.Background(), sender, receiver, value, "rent split")
	require.NoError(t, err)
	require.Len(t, legs, 2)
	assert.Equal(t, sender, legs[0].AccountID)
	assert.Equal(t, "-35.53", legs[0].Value.String())
	assert.Equal(t, receiver, legs[1].AccountID)
	assert.Equal(t, "35.53", legs[1].Value.String())
	assert.Equal(t, "rent split", legs[1].Description)
	assert.Equal(t, receiver, got.AccountID)
}

func TestExecRevert_TransactionNotFound(t *testing.T) {
	f := newFixture(t)
	accountID, txID := uuid.New(), uuid.New()
	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(nil, nil).Once()
	f.txRepo.EXPECT().Get(mock.Anything, txID).Return(nil, domain.ErrNotFound).Once()

	_, err := f.svc.ExecRevert(context.Background(), accountID, txID)
	assert.ErrorIs(t, err, ledger.ErrTransactionNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecRevert_EntryOfAnotherAccount(t *testing.T) {
	f := newFixture(t)
	accountID, otherID := uuid.New(), uuid.New()
	foreign := &ledger.Transaction{ID: uuid.New(), AccountID: otherID, Value: decimal.NewFromInt(-40)}

	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(nil, nil).Once()
	f.txRepo.EXPECT().Get(mock.Anything, foreign.ID).Return(foreign, nil).Once()

	_, err := f.svc.ExecRevert(context.Background(), accountID, foreign.ID)
	assert.ErrorIs(t, err, ledger.ErrTransactionNotFound)
	f.txRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	f.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecRevert_AlreadyReversed(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()
	stamped := time.Now()
	original := &ledger.Transaction{ID: uuid.New(), AccountID: accountID, Value: decimal.NewFromInt(100), ReversedAt: &stamped}

	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(entries("100", "-100"), nil).Once()
	f.txRepo.EXPECT().Get(mock.Anything, original.ID).Return(original, nil).Once()

	_, err := f.svc.ExecRevert(context.Background(), accountID, original.ID)
	assert.ErrorIs(t, err, ledger.ErrAlreadyReversed)
}

func TestExecRevert_LostStampRaceReportsAlreadyReversed(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()
	original := &ledger.Transaction{ID: uuid.New(), AccountID: accountID, Value: decimal.NewFromInt(-20)}

	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(entries("100", "-20"), nil).Once()
	f.txRepo.EXPECT().Get(mock.Anything, original.ID).Return(original, nil).Once()
	f.accRepo.EXPECT().Exists(mock.Anything, accountID).Return(true, nil).Once()
	f.txRepo.EXPECT().Update(mock.Anything, original.ID, mock.Anything).Return(domain.ErrNotFound).Once()

	_, err := f.svc.ExecRevert(context.Background(), accountID, original.ID)
	assert.ErrorIs(t, err, ledger.ErrAlreadyReversed)
}

func TestExecRevert_StampsAndRefunds(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, txsvc.WithClock(func() time.Time { return stamp }))
	accountID := uuid.New()
	original := &ledger.Transaction{ID: uuid.New(), AccountID: accountID, Value: decimal.RequireFromString("-20.555")}

	f.txRepo.EXPECT().ListByAccount(mock.Anything, accountID).Return(entries("100", "-20.555"), nil).Once()
	f.txRepo.EXPECT().Get(mock.Anything, original.ID).Return(original, nil).Once()
	f.accRepo.EXPECT().Exists(mock.Anything, accountID).Return(true, nil).Once()
	f.txRepo.EXPECT().Update(mock.Anything, original.ID, mock.MatchedBy(func(u dto.TransactionUpdate) bool {
		return u.ReversedAt != nil && u.ReversedAt.Equal(stamp)
	})).Return(nil).Once()
	f.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c dto.TransactionCreate) bool {
		return c.AccountID == accountID && c.Value.String() == "20.56" &&
			c.Description == ledger.RefundDescription && c.ReversedAt != nil && c.ReversedAt.Equal(stamp)
	})).RunAndReturn(func(_ context.Context, c dto.TransactionCreate) (*ledger.Transaction, error) {
		return &ledger.Transaction{ID: c.ID, AccountID: c.AccountID, Value: c.Value, Description: c.Description, ReversedAt: c.ReversedAt}, nil
	}).Once()
	f.bus.EXPECT().Emit(mock.Anything, mock.AnythingOfType("ledger.TransactionReverted")).Return(nil).Once()

	rev, err := f.svc.ExecRevert(context.Background(), accountID, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "-20.555", rev.OriginalValue.String())
	assert.Equal(t, "20.56", rev.Refund.Value.String())
	assert.Equal(t, ledger.RefundDescription, rev.Refund.Description)
}
