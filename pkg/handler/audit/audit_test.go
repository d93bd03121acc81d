package audit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unknownEvent struct{}

func (unknownEvent) Type() string { return "other" }

func TestHandleLedgerEvent(t *testing.T) {
	var buf bytes.Buffer
	handler := HandleLedgerEvent(slog.New(slog.NewTextHandler(&buf, nil)))
	accountID := uuid.New()

	require.NoError(t, handler(context.Background(), ledger.TransactionCreated{
		AccountID: accountID, Value: decimal.NewFromInt(10), Description: "deposit",
	}))
	assert.Contains(t, buf.String(), "transaction recorded")
	assert.Contains(t, buf.String(), accountID.String())

	buf.Reset()
	require.NoError(t, handler(context.Background(), &ledger.TransactionReverted{AccountID: accountID}))
	assert.Contains(t, buf.String(), "reversal recorded")

	buf.Reset()
	require.NoError(t, handler(context.Background(), &ledger.TransferCompleted{Value: decimal.NewFromInt(5)}))
	assert.Contains(t, buf.String(), "transfer recorded")

	buf.Reset()
	require.NoError(t, handler(context.Background(), unknownEvent{}))
	assert.Contains(t, buf.String(), "Skipping unexpected event type")
}
