// Package ledger holds the account transaction log model: entries, the balance
// derived from them and the rules every mutating operation must respect.
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundDescription is the description stamped on every compensating entry.
const RefundDescription = "Refund of improper transaction"

// Transaction is one signed entry in an account's log. Positive values credit
// the account, negative values debit it.
//
// Entries are append-only; ReversedAt is the only field that changes after
// creation and it changes at most once.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Value       decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ReversedAt  *time.Time
}

// Reversed reports whether the entry has already been reversed.
func (t *Transaction) Reversed() bool {
	return t.ReversedAt != nil
}

// ReversedValue is the value a compensating entry for t must carry.
func (t *Transaction) ReversedValue() decimal.Decimal {
	return t.Value.Neg()
}

// ValidateEntry checks the fields every new entry needs. A zero value counts
// as missing.
func ValidateEntry(value decimal.Decimal, description string) error {
	if value.IsZero() || strings.TrimSpace(description) == "" {
		return ErrValidation
	}
	return nil
}
