package dto

import "github.com/google/uuid"

// PersonCreate is a DTO for registering a person. Password is already hashed.
type PersonCreate struct {
	ID       uuid.UUID
	Name     string
	Document string
	Password string
}
