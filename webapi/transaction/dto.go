package transaction

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /accounts/{accountId}/transactions.
// Missing fields are reported by the ledger as "All input is required".
type CreateTransactionRequest struct {
	Value       decimal.Decimal `json:"value" swaggertype:"number" example:"100.50"`
	Description string          `json:"description" validate:"max=255" example:"Salary"`
}

// TransferRequest is the body of POST /accounts/{accountId}/transfer.
type TransferRequest struct {
	ReceiverAccountID string          `json:"receiverAccountId" example:"8f0c5a43-2d4b-4a39-9a55-0c9a0f6f7b19"`
	Value             decimal.Decimal `json:"value" swaggertype:"number" example:"35.53"`
	Description       string          `json:"description" validate:"max=255" example:"Rent split"`
}

// TransactionResponse is the projection returned for a single entry.
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Value       float64   `json:"value" example:"100.5"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListTransactionsResponse wraps an account's entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   common.Pagination     `json:"pagination"`
}

// BalanceResponse carries an account balance rounded to two decimals.
type BalanceResponse struct {
	Balance float64 `json:"balance" example:"14.47"`
}

func toResponse(tx *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Value:       ledger.Round(tx.Value).InexactFloat64(),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toResponses(txs []*ledger.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toResponse(tx))
	}
	return out
}
