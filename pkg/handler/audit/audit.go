// Package audit subscribes to ledger events and writes one structured log
// line per committed write.
package audit

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// EventTypes lists the events HandleLedgerEvent understands.
var EventTypes = []string{
	ledger.EventTransactionCreated,
	ledger.EventTransferCompleted,
	ledger.EventTransactionReverted,
}

// HandleLedgerEvent logs ledger events. Brokers deliver pointers and the
// in-memory bus delivers values, so both shapes are accepted.
func HandleLedgerEvent(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e eventbus.Event) error {
		log := logger.With("handler", "audit.HandleLedgerEvent", "event_type", e.Type())
		switch evt := e.(type) {
		case ledger.TransactionCreated:
			logCreated(ctx, log, &evt)
		case *ledger.TransactionCreated:
			logCreated(ctx, log, evt)
		case ledger.TransferCompleted:
			logTransfer(ctx, log, &evt)
		case *ledger.TransferCompleted:
			logTransfer(ctx, log, evt)
		case ledger.TransactionReverted:
			logReverted(ctx, log, &evt)
		case *ledger.TransactionReverted:
			logReverted(ctx, log, evt)
		default:
			log.Warn("Skipping unexpected event type", "event", e)
		}
		return nil
	}
}

func logCreated(ctx context.Context, log *slog.Logger, e *ledger.TransactionCreated) {
	log.InfoContext(ctx, "transaction recorded",
		"transaction_id", e.TransactionID,
		"account_id", e.AccountID,
		"value", e.Value.String(),
		"description", e.Description,
		"occurred_at", e.OccurredAt,
	)
}

func logTransfer(ctx context.Context, log *slog.Logger, e *ledger.TransferCompleted) {
	log.InfoContext(ctx, "transfer recorded",
		"sender_account_id", e.SenderAccountID,
		"receiver_account_id", e.ReceiverAccountID,
		"sender_transaction_id", e.SenderTransactionID,
		"receiver_transaction_id", e.ReceiverTransactionID,
		"value", e.Value.String(),
	)
}

func logReverted(ctx context.Context, log *slog.Logger, e *ledger.TransactionReverted) {
	log.InfoContext(ctx, "reversal recorded",
		"original_transaction_id", e.OriginalTransactionID,
		"refund_transaction_id", e.RefundTransactionID,
		"account_id", e.AccountID,
		"value", e.Value.String(),
		"reversed_at", e.ReversedAt,
	)
}
