package dto

import (
	"github.com/google/uuid"
)

// AccountCreate is a DTO for creating a new account.
type AccountCreate struct {
	ID       uuid.UUID
	PersonID uuid.UUID
	Branch   string
	Number   string
}
