// Package lock serializes poll cycles per team key, either inside one process or across
// replicas sharing a Redis instance.
package lock

import (
	"context"
	"fmt"
	"sync"
)

type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: map[string]chan struct{}{}}
}

// Lock blocks until the key is free or ctx is done. The returned func releases the key.
func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	slot := l.slot(key)

	select {
	case slot <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() { <-slot })
		}, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to acquire lock for %s: %w", key, ctx.Err())
	}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[key] = slot
	}

	return slot
}
