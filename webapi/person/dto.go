package person

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/person"
	"github.com/google/uuid"
)

// CreatePersonRequest is the body of POST /people.
type CreatePersonRequest struct {
	Name     string `json:"name" validate:"required,max=255" example:"Maria Silva"`
	Document string `json:"document" validate:"required,max=32" example:"569.679.155-76"`
	Password string `json:"password" validate:"required,max=72" example:"s3cret"`
}

// PersonResponse never carries the password hash.
type PersonResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(p *person.Person) PersonResponse {
	return PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		Document:  p.Document,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
