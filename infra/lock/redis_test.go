package lock

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(tb testing.TB) *redis.Client {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping redis integration test in short mode")
	}
	defer func() {
		if r := recover(); r != nil {
			tb.Skipf("docker is not reachable: %v", r)
		}
	}()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		tb.Skipf("failed to start redis container: %v", err)
	}
	tb.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(tb, err)
	client := redis.NewClient(&redis.Options{Addr: endpoint})
	tb.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisLocker_ExclusiveUntilReleased(t *testing.T) {
	client := setupRedis(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	locker := NewRedisLocker(client, "test:", 5*time.Second, logger)

	release, err := locker.Lock(context.Background(), "b", "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, "a")
	assert.ErrorIs(t, err, ErrLockTimeout)

	release()

	release, err = locker.Lock(context.Background(), "a")
	require.NoError(t, err)
	release()

	n, err := client.Exists(context.Background(), "test:lock:a", "test:lock:b").Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisLocker_ReleaseKeepsForeignLease(t *testing.T) {
	client := setupRedis(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	shortLived := NewRedisLocker(client, "test:", 50*time.Millisecond, logger)
	locker := NewRedisLocker(client, "test:", 5*time.Second, logger)

	release, err := shortLived.Lock(context.Background(), "a")
	require.NoError(t, err)

	// The lease expires and someone else takes the key.
	time.Sleep(100 * time.Millisecond)
	other, err := locker.Lock(context.Background(), "a")
	require.NoError(t, err)

	release()
	n, err := client.Exists(context.Background(), "test:lock:a").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	other()
}
