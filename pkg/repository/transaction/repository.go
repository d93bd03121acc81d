package transaction

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for the transaction log. Entries are never
// deleted, so there is no Delete.
type Repository interface {
	// Create inserts a new transaction and returns the stored row with its
	// timestamps filled in.
	Create(ctx context.Context, create dto.TransactionCreate) (*ledger.Transaction, error)

	// Update applies the non-nil fields of update to the transaction with id.
	// It does not bump updated_at.
	Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error

	// Get retrieves a transaction by its ID.
	Get(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)

	// ListByAccount lists an account's transactions ordered by creation time.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Transaction, error)
}
