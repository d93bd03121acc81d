package person

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/ledger/pkg/domain/person"
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
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "people" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), dto.PersonCreate{
		ID: uuid.New(), Name: "Carolina", Document: "56967915576", Password: "hash",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDocument(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "name", "document", "password", "created_at", "updated_at"}).
		AddRow(id.String(), "Carolina", "56967915576", "hash", now, now)
	mock.ExpectQuery(`SELECT \* FROM "people" WHERE document = \$1 ORDER BY "people"\."id" LIMIT \$2`).
		WithArgs("56967915576", 1).WillReturnRows(rows)

	p, err := repo.GetByDocument(context.Background(), "56967915576")
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)

	mock.ExpectQuery(`SELECT \* FROM "people" WHERE id = \$1`).
		WithArgs(sqlmock.AnyArg(), 1).WillReturnError(gorm.ErrRecordNotFound)
	_, err = repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}
