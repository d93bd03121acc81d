package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("account %w", domain.ErrNotFound)

	// ErrNotOwner is returned when a person acts on an account they do not own.
	ErrNotOwner = fmt.Errorf("not owner: %w", domain.ErrUnauthorized)

	// ErrAccountExists is returned when the branch/number pair is already registered.
	ErrAccountExists = fmt.Errorf("account %w", domain.ErrAlreadyExists)

	// ErrMissingFields is returned when branch, number or owner is empty.
	ErrMissingFields = errors.Join(domain.ErrValidation, errors.New("branch, account and person are required"))
)

// Account is a bank account owned by a person. Its balance is not stored; it
// is derived from the account's transaction log.
//
// Invariants:
// - An account always has an owner (PersonID).
// - Branch and Number are non-empty and unique as a pair.
type Account struct {
	ID        uuid.UUID
	PersonID  uuid.UUID
	Branch    string
	Number    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether personID owns the account.
func (a *Account) IsOwnedBy(personID uuid.UUID) bool {
	return a.PersonID == personID
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id        uuid.UUID
	personID  uuid.UUID
	branch    string
	number    string
	createdAt time.Time
	updatedAt time.Time
}

// New creates a new Builder with a fresh UUID.
func New() *Builder {
	now := time.Now().UTC()
	return &Builder{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithPersonID sets the owner. This is a mandatory field.
func (b *Builder) WithPersonID(personID uuid.UUID) *Builder {
	b.personID = personID
	return b
}

func (b *Builder) WithBranch(branch string) *Builder {
	b.branch = strings.TrimSpace(branch)
	return b
}

func (b *Builder) WithNumber(number string) *Builder {
	b.number = strings.TrimSpace(number)
	return b
}

// WithCreatedAt sets the creation timestamp, used when hydrating from storage.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the last-updated timestamp, used when hydrating from storage.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates the collected fields and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.personID == uuid.Nil || b.branch == "" || b.number == "" {
		return nil, ErrMissingFields
	}
	return &Account{
		ID:        b.id,
		PersonID:  b.personID,
		Branch:    b.branch,
		Number:    b.number,
		CreatedAt: b.createdAt,
		UpdatedAt: b.updatedAt,
	}, nil
}
