package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/infra"
	infra_eventbus "github.com/amirasaad/ledger/infra/eventbus"
	infra_lock "github.com/amirasaad/ledger/infra/lock"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/lock"
	"github.com/redis/go-redis/v9"
)

const consumerGroup = "ledger"

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log)
	deps.Logger = logger

	// Initialize database
	db, dialect, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if cfg.DB.Migrate {
		if err := infra.Migrate(db, dialect, logger); err != nil {
			logger.Error("Failed to migrate database", "error", err)
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize unit of work
	deps.Uow = infra.NewUoW(db)

	// Initialize event bus
	deps.EventBus, err = initEventBus(cfg, logger)
	if err != nil {
		return nil, err
	}

	deps.Locker, err = initLocker(cfg, logger)
	if err != nil {
		return nil, err
	}
	return deps, nil
}

// initEventBus builds the configured bus. A broker that cannot be reached at
// startup degrades to the in-memory bus; a misconfigured one is an error.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	driver := ""
	if cfg.EventBus != nil {
		driver = cfg.EventBus.Driver
	}

	switch driver {
	case "", "memory":
		return infra_eventbus.NewWithMemory(logger), nil

	case "redis":
		url := ""
		if cfg.Redis != nil {
			url = cfg.Redis.URL
		}
		if url == "" {
			return nil, fmt.Errorf("event bus driver redis requires REDIS_URL")
		}
		bus, err := infra_eventbus.NewWithRedis(url, cfg.EventBus.Stream, consumerGroup, logger)
		if err != nil {
			logger.Warn("Redis event bus unavailable, falling back to memory", "error", err)
			return infra_eventbus.NewWithMemory(logger), nil
		}
		return bus, nil

	case "kafka":
		if cfg.Kafka == nil || cfg.Kafka.Brokers == "" {
			return nil, fmt.Errorf("event bus driver kafka requires KAFKA_BROKERS")
		}
		bus, err := infra_eventbus.NewWithKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic, consumerGroup, logger)
		if err != nil {
			logger.Warn("Kafka event bus unavailable, falling back to memory", "error", err)
			return infra_eventbus.NewWithMemory(logger), nil
		}
		return bus, nil
	}
	return nil, fmt.Errorf("unsupported event bus driver %q", driver)
}

// initLocker builds the per-account locker named by LEDGER_LOCK.
func initLocker(cfg *config.App, logger *slog.Logger) (lock.Locker, error) {
	mode := "none"
	if cfg.Ledger != nil && cfg.Ledger.Lock != "" {
		mode = cfg.Ledger.Lock
	}

	switch mode {
	case "none":
		return lock.Noop{}, nil
	case "local":
		return lock.NewKeyedMutex(), nil
	case "redis":
		if cfg.Redis == nil || cfg.Redis.URL == "" {
			return nil, fmt.Errorf("ledger lock redis requires REDIS_URL")
		}
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opt)
		if err := client.Ping(context.Background()).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis lock: connection failed: %w", err)
		}
		return infra_lock.NewRedisLocker(client, cfg.Redis.KeyPrefix, cfg.Ledger.LockTTL, logger), nil
	}
	return nil, fmt.Errorf("unsupported ledger lock %q", mode)
}
