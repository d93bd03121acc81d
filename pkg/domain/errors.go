package domain

import "errors"

// Sentinels shared by every domain package. Package-specific errors wrap one of
// these so the transport layer can classify them with errors.Is.
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when a caller is not allowed to perform an action
	ErrUnauthorized = errors.New("unauthorized")
)
