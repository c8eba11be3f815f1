package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()

	store.Set("token-a", "1", 50*time.Millisecond)
	v, ok := store.Get("token-a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.Eventually(t, func() bool {
		_, ok := store.Get("token-a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryStore_ReadsDoNotExtendTTL(t *testing.T) {
	store := NewMemoryStore()
	store.Set("k", "v", 80*time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, ok := store.Get("k"); !ok {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("entry outlived its ttl while being read")
}

func TestMemoryStore_SetNonPositiveTTLDeletes(t *testing.T) {
	store := NewMemoryStore()
	store.Set("k", "v", time.Hour)
	store.Set("k", "v", 0)
	_, ok := store.Get("k")
	assert.False(t, ok)

	store.Set("k", "v", time.Hour)
	store.Set("k", "v", -time.Minute)
	_, ok = store.Get("k")
	assert.False(t, ok)
}

func TestMemoryStore_SetAfterExpiryIsKept(t *testing.T) {
	store := NewMemoryStore()
	store.Set("k", "old", 20*time.Millisecond)
	time.Sleep(40 * time.Millisecond)

	store.Set("k", "new", time.Hour)
	v, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestMemoryStore_ConcurrentRefreshSurvivesReads(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		key := fmt.Sprintf("key-%d", i)
		store.Set(key, "stale", time.Millisecond)
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				store.Get(key)
			}
		}()
		go func() {
			defer wg.Done()
			time.Sleep(5 * time.Millisecond)
			store.Set(key, "fresh", time.Hour)
		}()
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		v, ok := store.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok)
		assert.Equal(t, "fresh", v)
	}
}

func TestMemoryStore_Sweep(t *testing.T) {
	store := NewMemoryStore()

	store.Set("short", "x", 10*time.Millisecond)
	store.Set("long", "y", time.Hour)
	time.Sleep(30 * time.Millisecond)

	store.Sweep()
	assert.Equal(t, 1, store.Len())
	_, ok := store.Get("long")
	assert.True(t, ok)
}

func TestMemoryStore_Janitor(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.Janitor(ctx)
		close(done)
	}()

	store.Set("short", "x", 20*time.Millisecond)
	store.Set("long", "y", time.Hour)
	require.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
