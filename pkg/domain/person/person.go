package person

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrPersonNotFound is returned when a person cannot be found in the repository.
	ErrPersonNotFound = fmt.Errorf("person %w", domain.ErrNotFound)
	// ErrPersonUnauthorized is returned when a document/password pair does not match.
	ErrPersonUnauthorized = fmt.Errorf("person %w", domain.ErrUnauthorized)
	// ErrDocumentTaken is returned when another person already uses the document.
	ErrDocumentTaken = fmt.Errorf("document %w", domain.ErrAlreadyExists)
)

// Person owns accounts and authenticates with a document number and password.
type Person struct {
	ID        uuid.UUID
	Name      string
	Document  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a Person with a digits-only document and a hashed password.
func New(name, document, password string) (*Person, error) {
	name = strings.TrimSpace(name)
	document = utils.OnlyDigits(document)
	if name == "" || document == "" || password == "" {
		return nil, errors.Join(domain.ErrValidation, errors.New("name, document and password are required"))
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Person{
		ID:        uuid.New(),
		Name:      name,
		Document:  document,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
