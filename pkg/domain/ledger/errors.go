package ledger

import (
	"github.com/amirasaad/ledger/pkg/domain"
)

// Messages are returned to API clients verbatim.
var (
	// ErrValidation is returned when a required field is missing or zero.
	ErrValidation = newError(domain.ErrValidation, "All input is required")

	// ErrInsufficientFunds is returned when an entry would drive the balance below zero.
	ErrInsufficientFunds = newError(domain.ErrUnauthorized, "Insufficient funds for that transaction")

	// ErrInsufficientTransferFunds is the transfer flavor of ErrInsufficientFunds.
	ErrInsufficientTransferFunds = newError(ErrInsufficientFunds, "Insufficient funds for transfer")

	// ErrAccountNotFound is returned when the referenced account does not exist.
	ErrAccountNotFound = newError(domain.ErrUnauthorized, "Account ID does not exist in Account table.")

	// ErrAlreadyReversed is returned when reversing a transaction that carries a reversal stamp.
	ErrAlreadyReversed = newError(domain.ErrUnauthorized, "The same transaction cannot be reversed more than once")

	// ErrNegativeBalance is returned when a reversal would leave the account negative.
	ErrNegativeBalance = newError(domain.ErrUnauthorized, "Negative balance is not allowed")

	// ErrTransactionNotFound is returned when the transaction to reverse does not exist.
	ErrTransactionNotFound = newError(domain.ErrNotFound, "Transaction not found")
)

// Error carries a caller-facing message and the domain sentinel it belongs to.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }
