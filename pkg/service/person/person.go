// Package person provides registration and lookup of account owners.
package person

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/person"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	personrepo "github.com/amirasaad/ledger/pkg/repository/person"
	"github.com/google/uuid"
)

// Service provides business logic for people.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create registers a person. The document is stored digits-only and must be
// unique; the password is stored as a bcrypt hash.
func (s *Service) Create(
	ctx context.Context,
	name, document, password string,
) (*person.Person, error) {
	log := s.logger.With("op", "CreatePerson")
	p, err := person.New(name, document, password)
	if err != nil {
		log.Warn("invalid person", "error", err)
		return nil, err
	}
	repo, err := repository.Resolve[personrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, dto.PersonCreate{
		ID:       p.ID,
		Name:     p.Name,
		Document: p.Document,
		Password: p.Password,
	}); err != nil {
		log.Error("failed to create person", "error", err)
		return nil, err
	}
	log.Info("person created", "person_id", p.ID)
	return p, nil
}

// Get returns the person with id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*person.Person, error) {
	repo, err := repository.Resolve[personrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}
