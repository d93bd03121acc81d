//go:build kafka

package eventbus

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	testcontainerskafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

// setupKafkaBus starts a Kafka container and returns a KafkaEventBus bound to it.
func setupKafkaBus(tb testing.TB) *KafkaEventBus {
	tb.Helper()
	defer func() {
		if r := recover(); r != nil {
			tb.Skipf("skipping kafka integration test: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	container, err := testcontainerskafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	if err != nil {
		tb.Skipf("failed to start kafka container: %v", err)
	}
	tb.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(tb, err)

	bus, err := NewWithKafka(strings.Join(brokers, ","), "ledger.events.test", "ledger-test", discardLogger())
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestKafkaBus_HandlerReceivesEvent(t *testing.T) {
	bus := setupKafkaBus(t)

	received := make(chan *ledger.TransferCompleted, 1)
	bus.Register(ledger.EventTransferCompleted, func(ctx context.Context, e eventbus.Event) error {
		received <- e.(*ledger.TransferCompleted)
		return nil
	})
	// The reader starts at the latest offset once it has joined its group.
	time.Sleep(5 * time.Second)

	want := ledger.TransferCompleted{
		SenderTransactionID:   uuid.New(),
		ReceiverTransactionID: uuid.New(),
		SenderAccountID:       uuid.New(),
		ReceiverAccountID:     uuid.New(),
		Value:                 decimal.RequireFromString("35.53"),
		Description:           "split",
		OccurredAt:            time.Now().UTC(),
	}
	require.NoError(t, bus.Emit(context.Background(), want))

	select {
	case got := <-received:
		require.Equal(t, want.SenderTransactionID, got.SenderTransactionID)
		require.True(t, want.Value.Equal(got.Value))
	case <-time.After(30 * time.Second):
		t.Fatal("timed out waiting for kafka event")
	}
}
