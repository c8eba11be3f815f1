// Package cache provides an expiring key-value store that components receive
// through their constructors instead of holding package-level maps.
package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// TTLStore is an expiring key-value store.
type TTLStore interface {
	Set(key string, value string, ttl time.Duration)
	Get(key string) (string, bool)
	Delete(key string)
}

// MemoryStore is an in-process TTLStore. Expired entries are never returned
// and are removed in bulk while Janitor runs.
type MemoryStore struct {
	items *ttlcache.Cache[string, string]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: ttlcache.New[string, string](
			ttlcache.WithDisableTouchOnHit[string, string](),
		),
	}
}

// Set implements TTLStore. A non-positive ttl deletes the key.
func (m *MemoryStore) Set(key string, value string, ttl time.Duration) {
	if ttl <= 0 {
		m.items.Delete(key)
		return
	}
	m.items.Set(key, value, ttl)
}

// Get implements TTLStore.
func (m *MemoryStore) Get(key string) (string, bool) {
	item := m.items.Get(key)
	if item == nil || item.IsExpired() {
		return "", false
	}
	return item.Value(), true
}

// Delete implements TTLStore.
func (m *MemoryStore) Delete(key string) {
	m.items.Delete(key)
}

// Len returns the number of stored entries, including expired ones not yet removed.
func (m *MemoryStore) Len() int {
	return m.items.Len()
}

// Sweep removes every expired entry.
func (m *MemoryStore) Sweep() {
	m.items.DeleteExpired()
}

// Janitor removes expired entries as they expire until ctx is cancelled.
// It blocks, so callers run it in its own goroutine.
func (m *MemoryStore) Janitor(ctx context.Context) {
	go func() {
		<-ctx.Done()
		m.items.Stop()
	}()
	m.items.Start()
}
