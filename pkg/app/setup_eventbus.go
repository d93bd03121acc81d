package app

import (
	"github.com/amirasaad/ledger/pkg/handler/audit"
)

// setupEventBus registers the event subscribers.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	handler := audit.HandleLedgerEvent(a.Deps.Logger)
	for _, eventType := range audit.EventTypes {
		bus.Register(eventType, handler)
	}
}
