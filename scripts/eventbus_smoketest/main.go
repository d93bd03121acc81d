// Command eventbus_smoketest publishes one of each ledger event on a real
// broker and waits until the subscribers have seen them.
//
//	DRIVER=kafka BROKERS=localhost:9092 go run ./scripts/eventbus_smoketest
//	DRIVER=redis REDIS_URL=redis://localhost:6379/0 go run ./scripts/eventbus_smoketest
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/handler/audit"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type closer interface {
	Close() error
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func newBus(logger *slog.Logger) (eventbus.Bus, error) {
	switch driver := env("DRIVER", "kafka"); driver {
	case "kafka":
		return infraeventbus.NewWithKafka(
			env("BROKERS", "localhost:9092"),
			env("TOPIC", "ledger.events.smoketest"),
			env("GROUP_ID", "ledger-smoketest"),
			logger,
		)
	case "redis":
		return infraeventbus.NewWithRedis(
			env("REDIS_URL", "redis://localhost:6379/0"),
			env("STREAM", "ledger:events:smoketest"),
			env("GROUP_ID", "ledger-smoketest"),
			logger,
		)
	case "memory":
		return infraeventbus.NewWithMemory(logger), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// RunSmokeTest emits the ledger events and waits for each to come back.
func RunSmokeTest() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	bus, err := newBus(logger)
	if err != nil {
		logger.Error("bus init failed", "error", err)
		return err
	}
	if c, ok := bus.(closer); ok {
		defer func() { _ = c.Close() }()
	}

	accountID := uuid.New()
	now := time.Now().UTC()
	events := []eventbus.Event{
		ledger.TransactionCreated{
			TransactionID: uuid.New(), AccountID: accountID,
			Value: decimal.NewFromInt(100), Description: "smoke test", OccurredAt: now,
		},
		ledger.TransferCompleted{
			SenderTransactionID: uuid.New(), ReceiverTransactionID: uuid.New(),
			SenderAccountID: accountID, ReceiverAccountID: uuid.New(),
			Value: decimal.NewFromInt(10), Description: "smoke test", OccurredAt: now,
		},
		ledger.TransactionReverted{
			OriginalTransactionID: uuid.New(), RefundTransactionID: uuid.New(),
			AccountID: accountID, Value: decimal.NewFromInt(-100), ReversedAt: now,
		},
	}

	var wg sync.WaitGroup
	wg.Add(len(events))
	logEvent := audit.HandleLedgerEvent(logger)
	for _, eventType := range audit.EventTypes {
		var once sync.Once
		bus.Register(eventType, func(ctx context.Context, e eventbus.Event) error {
			once.Do(wg.Done)
			return logEvent(ctx, e)
		})
	}

	// Consumers start at the latest offset; give them time to join.
	time.Sleep(2 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, e := range events {
		if err := bus.Emit(ctx, e); err != nil {
			logger.Error("emit failed", "type", e.Type(), "error", err)
			return err
		}
		logger.Info("emitted", "type", e.Type())
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		logger.Info("all events received")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for events: %w", ctx.Err())
	}
}

func main() {
	if err := RunSmokeTest(); err != nil {
		os.Exit(1)
	}
}
