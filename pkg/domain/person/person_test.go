package person_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/person"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := person.New(" Carolina Rosa ", "569.679.155-76", "senhaforte")
	require.NoError(t, err)
	assert.Equal(t, "Carolina Rosa", p.Name)
	assert.Equal(t, "56967915576", p.Document)
	assert.NotEqual(t, "senhaforte", p.Password)
	assert.True(t, utils.CheckPasswordHash("senhaforte", p.Password))
}

func TestNew_MissingFields(t *testing.T) {
	_, err := person.New("", "123", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = person.New("name", "no digits", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = person.New("name", "123", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
