package eventbus

import (
	"encoding/json"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// EventTypes maps a wire type name to a constructor for its payload. Brokers
// use it to rebuild typed events on the consuming side.
var EventTypes = map[string]func() eventbus.Event{
	ledger.EventTransactionCreated:  func() eventbus.Event { return &ledger.TransactionCreated{} },
	ledger.EventTransferCompleted:   func() eventbus.Event { return &ledger.TransferCompleted{} },
	ledger.EventTransactionReverted: func() eventbus.Event { return &ledger.TransactionReverted{} },
}

func encodeEnvelope(event eventbus.Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal failed: %w", err)
	}
	envBytes, err := json.Marshal(envelope{Type: event.Type(), Payload: data})
	if err != nil {
		return nil, fmt.Errorf("envelope marshal failed: %w", err)
	}
	return envBytes, nil
}

// decodeEnvelope rebuilds the typed event carried by raw.
func decodeEnvelope(raw []byte) (string, eventbus.Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	constructor, ok := EventTypes[env.Type]
	if !ok {
		return env.Type, nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	evt := constructor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		return env.Type, nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return env.Type, evt, nil
}
