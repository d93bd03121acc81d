// Package account provides opening, listing and ownership checks for
// accounts. Balances live in the transaction log and are served by the
// transaction service.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	accountrepo "github.com/amirasaad/ledger/pkg/repository/account"
	personrepo "github.com/amirasaad/ledger/pkg/repository/person"
	"github.com/google/uuid"
)

// Service provides business logic for accounts.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create opens an account with branch and number for personID.
func (s *Service) Create(
	ctx context.Context,
	personID uuid.UUID,
	branch, number string,
) (*account.Account, error) {
	log := s.logger.With("op", "CreateAccount", "person_id", personID)
	acc, err := account.New().
		WithPersonID(personID).
		WithBranch(branch).
		WithNumber(number).
		Build()
	if err != nil {
		log.Warn("invalid account", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		people, err := repository.Resolve[personrepo.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := people.Get(ctx, personID); err != nil {
			return err
		}
		accounts, err := repository.Resolve[accountrepo.Repository](uow)
		if err != nil {
			return err
		}
		return accounts.Create(ctx, dto.AccountCreate{
			ID:       acc.ID,
			PersonID: acc.PersonID,
			Branch:   acc.Branch,
			Number:   acc.Number,
		})
	})
	if err != nil {
		log.Error("failed to create account", "error", err)
		return nil, err
	}
	log.Info("account created", "account_id", acc.ID)
	return acc, nil
}

// List returns the accounts owned by personID.
func (s *Service) List(ctx context.Context, personID uuid.UUID) ([]*account.Account, error) {
	repo, err := repository.Resolve[accountrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.ListByPerson(ctx, personID)
}

// Authorize checks that personID owns accountID. An unknown account is
// reported with the ledger's account error so callers see one message for it.
func (s *Service) Authorize(ctx context.Context, personID, accountID uuid.UUID) error {
	repo, err := repository.Resolve[accountrepo.Repository](s.uow)
	if err != nil {
		return err
	}
	acc, err := repo.Get(ctx, accountID)
	if errors.Is(err, domain.ErrNotFound) {
		return ledger.ErrAccountNotFound
	}
	if err != nil {
		return err
	}
	if !acc.IsOwnedBy(personID) {
		s.logger.Warn("account access denied", "person_id", personID, "account_id", accountID)
		return account.ErrNotOwner
	}
	return nil
}
