// Package lock serializes read-balance-then-write sequences per account.
package lock

import (
	"context"
	"slices"
	"sync"
)

// Locker acquires every key or none. The returned release function must be
// called exactly once.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (release func(), err error)
}

// Keys returns keys sorted and deduplicated. Acquiring locks in this order
// keeps two transfers between the same accounts from deadlocking.
func Keys(keys ...string) []string {
	out := slices.Clone(keys)
	slices.Sort(out)
	return slices.Compact(out)
}

// Noop never blocks.
type Noop struct{}

func (Noop) Lock(context.Context, ...string) (func(), error) {
	return func() {}, nil
}

// KeyedMutex is an in-process Locker holding one mutex per key. Entries are
// dropped when nobody holds or waits on them.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*entry)}
}

// Lock blocks until all keys are held or ctx is done.
func (k *KeyedMutex) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = Keys(keys...)
	held := make([]string, 0, len(keys))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			k.unlock(held[i])
		}
	}

	for _, key := range keys {
		if err := k.lock(ctx, key); err != nil {
			release()
			return nil, err
		}
		held = append(held, key)
	}
	return release, nil
}

func (k *KeyedMutex) lock(ctx context.Context, key string) error {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	acquired := make(chan struct{})
	go func() {
		e.mu.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
		return nil
	case <-ctx.Done():
		// The goroutine still owns the pending Lock; hand it straight back.
		go func() {
			<-acquired
			k.unlock(key)
		}()
		return ctx.Err()
	}
}

func (k *KeyedMutex) unlock(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e := k.locks[key]
	e.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
}

var (
	_ Locker = Noop{}
	_ Locker = (*KeyedMutex)(nil)
)
