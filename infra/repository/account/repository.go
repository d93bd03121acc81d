package account

import (
	"context"
	"errors"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository backed by db.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	row := model.Account{
		ID:       create.ID,
		PersonID: create.PersonID,
		Branch:   create.Branch,
		Number:   create.Number,
	}
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return account.ErrAccountExists
	}
	return err
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var row model.Account
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, account.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapModelToDomain(&row), nil
}

// Exists implements account.Repository.
func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return false, infrarepo.MapGormErrorToDomain(err)
	}
	return n > 0, nil
}

// ListByPerson implements account.Repository.
func (r *repository) ListByPerson(ctx context.Context, personID uuid.UUID) ([]*account.Account, error) {
	var rows []model.Account
	if err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	out := make([]*account.Account, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDomain(&rows[i]))
	}
	return out, nil
}

func mapModelToDomain(row *model.Account) *account.Account {
	return &account.Account{
		ID:        row.ID,
		PersonID:  row.PersonID,
		Branch:    row.Branch,
		Number:    row.Number,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
