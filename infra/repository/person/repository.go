package person

import (
	"context"
	"errors"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/person"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository/person"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a person repository backed by db.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create dto.PersonCreate) error {
	row := model.Person{
		ID:       create.ID,
		Name:     create.Name,
		Document: create.Document,
		Password: create.Password,
	}
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return person.ErrDocumentTaken
	}
	return err
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*person.Person, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *repository) GetByDocument(ctx context.Context, document string) (*person.Person, error) {
	return r.first(ctx, "document = ?", document)
}

func (r *repository) first(ctx context.Context, query string, arg any) (*person.Person, error) {
	var row model.Person
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).First(&row, query, arg).Error
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, person.ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &person.Person{
		ID:        row.ID,
		Name:      row.Name,
		Document:  row.Document,
		Password:  row.Password,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
