package store

import (
	"context"
	"sync"
)

// BehaviorSource fetches per-store assistant behavior from the backend.
type BehaviorSource interface {
	GetBehavior(ctx context.Context, storeID string) (Behavior, error)
}

// BehaviorCache is a get-or-fetch cache of Behavior keyed by store id.
//
// Contract:
// - No eviction and no expiry; entries live until process restart.
//   Staleness is tolerated: behavior config only shapes greetings/voice,
//   never the decision outcome.
// - Safe for concurrent use. Concurrent fetches for the same store may race;
//   single-writer-wins, and losers simply overwrite with an equivalent value.
// - Fetch failures are not cached, so the next call retries.
type BehaviorCache struct {
	src BehaviorSource

	mu      sync.RWMutex
	entries map[string]Behavior
}

func NewBehaviorCache(src BehaviorSource) *BehaviorCache {
	return &BehaviorCache{src: src, entries: make(map[string]Behavior)}
}

// Get returns the cached behavior for a store, fetching on miss.
// On fetch failure it returns a zero Behavior and false.
func (c *BehaviorCache) Get(ctx context.Context, storeID string) (Behavior, bool) {
	if storeID == "" {
		return Behavior{}, false
	}

	c.mu.RLock()
	b, ok := c.entries[storeID]
	c.mu.RUnlock()
	if ok {
		return b, true
	}

	if c.src == nil {
		return Behavior{}, false
	}
	fetched, err := c.src.GetBehavior(ctx, storeID)
	if err != nil {
		return Behavior{}, false
	}

	c.mu.Lock()
	c.entries[storeID] = fetched
	c.mu.Unlock()
	return fetched, true
}

// Invalidate drops one store's entry (ops hook; not used on the call path).
func (c *BehaviorCache) Invalidate(storeID string) {
	c.mu.Lock()
	delete(c.entries, storeID)
	c.mu.Unlock()
}
