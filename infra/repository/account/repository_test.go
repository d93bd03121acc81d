package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	create := dto.AccountCreate{ID: uuid.New(), PersonID: uuid.New(), Branch: "001", Number: "2033392-5"}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.Create(context.Background(), create))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()
	require.Error(t, repo.Create(context.Background(), create))
}

func TestRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id, personID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "person_id", "branch", "account", "created_at", "updated_at"}).
		AddRow(id.String(), personID.String(), "001", "2033392-5", now, now)
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 ORDER BY "accounts"\."id" LIMIT \$2`).
		WithArgs(id, 1).WillReturnRows(rows)

	acc, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "2033392-5", acc.Number)
	assert.True(t, acc.IsOwnedBy(personID))

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WithArgs(sqlmock.AnyArg(), 1).WillReturnError(gorm.ErrRecordNotFound)
	_, err = repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE id = \$1`).
		WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	ok, err := repo.Exists(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE id = \$1`).
		WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	ok, err = repo.Exists(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_ListByPerson(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	personID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "person_id", "branch", "account", "created_at", "updated_at"}).
		AddRow(uuid.NewString(), personID.String(), "001", "1", now, now).
		AddRow(uuid.NewString(), personID.String(), "001", "2", now, now)
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE person_id = \$1 ORDER BY created_at asc`).
		WithArgs(personID).WillReturnRows(rows)

	accs, err := repo.ListByPerson(context.Background(), personID)
	require.NoError(t, err)
	assert.Len(t, accs, 2)
}
