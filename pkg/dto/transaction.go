package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate is a DTO for appending a new entry to an account's log.
type TransactionCreate struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Value       decimal.Decimal
	Description string
	ReversedAt  *time.Time // set only on refund entries
}

// TransactionUpdate is a DTO for the fields of a transaction that may change
// after creation.
type TransactionUpdate struct {
	ReversedAt *time.Time
}
