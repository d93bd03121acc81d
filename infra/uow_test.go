package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/person"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockUoW(t *testing.T) (*UoW, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return NewUoW(db), mock
}

func TestUoW_DoAndGetRepository(t *testing.T) {
	uow, mock := newMockUoW(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		txRepo, err := repository.Resolve[transaction.Repository](txUow)
		require.NoError(t, err)
		assert.NotNil(t, txRepo)

		accRepo, err := repository.Resolve[account.Repository](txUow)
		require.NoError(t, err)
		assert.NotNil(t, accRepo)

		personRepo, err := repository.Resolve[person.Repository](txUow)
		require.NoError(t, err)
		assert.NotNil(t, personRepo)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	uow, mock := newMockUoW(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := uow.Do(context.Background(), func(repository.UnitOfWork) error { return boom })
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_GetRepositoryOutsideTransaction(t *testing.T) {
	uow, _ := newMockUoW(t)

	repoAny, err := uow.GetRepository((*transaction.Repository)(nil))
	require.NoError(t, err)
	_, ok := repoAny.(transaction.Repository)
	assert.True(t, ok)
}

func TestUoW_GetRepositoryUnknownType(t *testing.T) {
	uow, _ := newMockUoW(t)

	_, err := uow.GetRepository((*error)(nil))
	assert.Error(t, err)

	_, err = uow.GetRepository(nil)
	assert.Error(t, err)
}
