package account

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
)

// CreateAccountRequest is the body of POST /people/{personId}/accounts.
type CreateAccountRequest struct {
	Branch  string `json:"branch" validate:"required,max=16" example:"0001"`
	Account string `json:"account" validate:"required,max=32" example:"12345-6"`
}

// AccountResponse is the projection of an account.
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	PersonID  uuid.UUID `json:"personId"`
	Branch    string    `json:"branch"`
	Account   string    `json:"account"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		PersonID:  a.PersonID,
		Branch:    a.Branch,
		Account:   a.Number,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
