package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for accounts.
type Repository interface {
	// Create inserts a new account record from a DTO.
	Create(ctx context.Context, create dto.AccountCreate) error

	// Get retrieves an account by its ID.
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)

	// Exists reports whether an account with id is registered.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// ListByPerson lists the accounts owned by personID.
	ListByPerson(ctx context.Context, personID uuid.UUID) ([]*account.Account, error)
}
