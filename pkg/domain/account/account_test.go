package account_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	domainaccount "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Parallel()
	personID := uuid.New()
	acc, err := domainaccount.New().
		WithPersonID(personID).
		WithBranch(" 001 ").
		WithNumber("2033392-5").
		Build()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, acc.ID)
	assert.Equal(t, "001", acc.Branch)
	assert.Equal(t, "2033392-5", acc.Number)
	assert.True(t, acc.IsOwnedBy(personID))
	assert.False(t, acc.IsOwnedBy(uuid.New()))
}

func TestNewAccount_MissingFields(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		builder *domainaccount.Builder
	}{
		{"no owner", domainaccount.New().WithBranch("001").WithNumber("1")},
		{"no branch", domainaccount.New().WithPersonID(uuid.New()).WithNumber("1")},
		{"no number", domainaccount.New().WithPersonID(uuid.New()).WithBranch("001")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestErrors(t *testing.T) {
	assert.ErrorIs(t, domainaccount.ErrAccountNotFound, domain.ErrNotFound)
	assert.ErrorIs(t, domainaccount.ErrNotOwner, domain.ErrUnauthorized)
	assert.ErrorIs(t, domainaccount.ErrAccountExists, domain.ErrAlreadyExists)
}
