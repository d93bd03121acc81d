package person

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/person"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for people.
type Repository interface {
	Create(ctx context.Context, create dto.PersonCreate) error
	Get(ctx context.Context, id uuid.UUID) (*person.Person, error)
	GetByDocument(ctx context.Context, document string) (*person.Person, error)
}
