package initializer

import (
	"io"
	"log/slog"
	"testing"
	"time"

	infra_eventbus "github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/lock"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestInitEventBus_DefaultsToMemoryWhenNoExplicitDriver(t *testing.T) {
	cfg := &config.App{
		Redis:    &config.Redis{URL: "redis://localhost:6379/0"},
		EventBus: &config.EventBus{Driver: ""},
	}

	bus, err := initEventBus(cfg, discard())
	require.NoError(t, err)
	require.IsType(t, &infra_eventbus.MemoryEventBus{}, bus)
}

func TestInitEventBus_ExplicitRedisRequiresURL(t *testing.T) {
	cfg := &config.App{
		Redis:    &config.Redis{URL: ""},
		EventBus: &config.EventBus{Driver: "redis", Stream: "ledger:events"},
	}

	_, err := initEventBus(cfg, discard())
	require.Error(t, err)
}

func TestInitEventBus_RedisConnectionErrorFallsBackToMemory(t *testing.T) {
	cfg := &config.App{
		Redis:    &config.Redis{URL: "redis://127.0.0.1:1"},
		EventBus: &config.EventBus{Driver: "redis", Stream: "ledger:events"},
	}

	bus, err := initEventBus(cfg, discard())
	require.NoError(t, err)
	require.IsType(t, &infra_eventbus.MemoryEventBus{}, bus)
}

func TestInitEventBus_ExplicitKafkaRequiresBrokers(t *testing.T) {
	cfg := &config.App{
		EventBus: &config.EventBus{Driver: "kafka"},
		Kafka:    &config.Kafka{Brokers: "", Topic: "ledger.events"},
	}

	_, err := initEventBus(cfg, discard())
	require.Error(t, err)
}

func TestInitEventBus_KafkaConnectionErrorFallsBackToMemory(t *testing.T) {
	cfg := &config.App{
		EventBus: &config.EventBus{Driver: "kafka"},
		Kafka:    &config.Kafka{Brokers: "127.0.0.1:1", Topic: "ledger.events"},
	}

	bus, err := initEventBus(cfg, discard())
	require.NoError(t, err)
	require.IsType(t, &infra_eventbus.MemoryEventBus{}, bus)
}

func TestInitEventBus_UnsupportedDriverErrors(t *testing.T) {
	cfg := &config.App{
		EventBus: &config.EventBus{Driver: "nope"},
	}

	_, err := initEventBus(cfg, discard())
	require.Error(t, err)
}

func TestInitLocker(t *testing.T) {
	l, err := initLocker(&config.App{Ledger: &config.Ledger{Lock: "none"}}, discard())
	require.NoError(t, err)
	require.IsType(t, lock.Noop{}, l)

	l, err = initLocker(&config.App{Ledger: &config.Ledger{Lock: "local"}}, discard())
	require.NoError(t, err)
	require.IsType(t, &lock.KeyedMutex{}, l)

	_, err = initLocker(&config.App{Ledger: &config.Ledger{Lock: "redis", LockTTL: time.Second}}, discard())
	require.Error(t, err)

	_, err = initLocker(&config.App{
		Ledger: &config.Ledger{Lock: "redis", LockTTL: time.Second},
		Redis:  &config.Redis{URL: "redis://127.0.0.1:1"},
	}, discard())
	require.Error(t, err)

	_, err = initLocker(&config.App{Ledger: &config.Ledger{Lock: "zookeeper"}}, discard())
	require.Error(t, err)
}

func TestInitializeDependencies_SQLite(t *testing.T) {
	cfg := &config.App{
		Env:      "test",
		Log:      &config.Log{Format: "text", TimeFormat: time.Kitchen},
		DB:       &config.DB{Url: ":memory:", Migrate: true},
		EventBus: &config.EventBus{Driver: "memory"},
		Ledger:   &config.Ledger{Lock: "local"},
	}

	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	require.NotNil(t, deps.Uow)
	require.IsType(t, &infra_eventbus.MemoryEventBus{}, deps.EventBus)
	require.IsType(t, &lock.KeyedMutex{}, deps.Locker)
}
