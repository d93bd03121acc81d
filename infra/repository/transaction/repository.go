package transaction

import (
	"context"
	"time"

	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction repository backed by db.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(
	ctx context.Context,
	create dto.TransactionCreate,
) (*ledger.Transaction, error) {
	row := mapCreateDTOToModel(create)
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToDomain(&row), nil
}

// Update implements transaction.Repository. Stamping reversed_at only matches
// rows that are not reversed yet, so a second stamp reports ErrNotFound.
func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	update dto.TransactionUpdate,
) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	q := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("id = ?", id)
	if update.ReversedAt != nil {
		q = q.Where("reversed_at IS NULL")
	}
	res := q.UpdateColumns(updates)
	if res.Error != nil {
		return infrarepo.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Get implements transaction.Repository.
func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*ledger.Transaction, error) {
	var row model.Transaction
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToDomain(&row), nil
}

// ListByAccount implements transaction.Repository.
func (r *repository) ListByAccount(
	ctx context.Context,
	accountID uuid.UUID,
) ([]*ledger.Transaction, error) {
	var rows []model.Transaction
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	result := make([]*ledger.Transaction, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToDomain(&rows[i]))
	}
	return result, nil
}

// --- Mappers ---

func mapCreateDTOToModel(create dto.TransactionCreate) model.Transaction {
	return model.Transaction{
		ID:          create.ID,
		AccountID:   create.AccountID,
		Value:       create.Value,
		Description: create.Description,
		ReversedAt:  create.ReversedAt,
	}
}

func mapUpdateDTOToModel(update dto.TransactionUpdate) map[string]any {
	updates := make(map[string]any)
	if update.ReversedAt != nil {
		updates["reversed_at"] = update.ReversedAt.UTC().Truncate(time.Microsecond)
	}
	return updates
}

func mapModelToDomain(row *model.Transaction) *ledger.Transaction {
	return &ledger.Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Value:       row.Value,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		ReversedAt:  row.ReversedAt,
	}
}
