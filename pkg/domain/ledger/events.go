package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventTransactionCreated  = "ledger.TransactionCreated"
	EventTransferCompleted   = "ledger.TransferCompleted"
	EventTransactionReverted = "ledger.TransactionReverted"
)

// TransactionCreated is emitted after a single entry has been appended.
type TransactionCreated struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	AccountID     uuid.UUID       `json:"account_id"`
	Value         decimal.Decimal `json:"value"`
	Description   string          `json:"description"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func (TransactionCreated) Type() string { return EventTransactionCreated }

// TransferCompleted is emitted once both legs of a transfer are written.
type TransferCompleted struct {
	SenderTransactionID   uuid.UUID       `json:"sender_transaction_id"`
	ReceiverTransactionID uuid.UUID       `json:"receiver_transaction_id"`
	SenderAccountID       uuid.UUID       `json:"sender_account_id"`
	ReceiverAccountID     uuid.UUID       `json:"receiver_account_id"`
	Value                 decimal.Decimal `json:"value"`
	Description           string          `json:"description"`
	OccurredAt            time.Time       `json:"occurred_at"`
}

func (TransferCompleted) Type() string { return EventTransferCompleted }

// TransactionReverted is emitted after the original entry is stamped and the
// refund entry is written.
type TransactionReverted struct {
	OriginalTransactionID uuid.UUID       `json:"original_transaction_id"`
	RefundTransactionID   uuid.UUID       `json:"refund_transaction_id"`
	AccountID             uuid.UUID       `json:"account_id"`
	Value                 decimal.Decimal `json:"value"`
	ReversedAt            time.Time       `json:"reversed_at"`
}

func (TransactionReverted) Type() string { return EventTransactionReverted }
