package dashboard

import (
	"context"
	"sync"
)

// MemoryCache keeps the snapshot in process. It is the default cache.
type MemoryCache struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Load(_ context.Context) (Snapshot, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil {
		return Snapshot{}, false, nil
	}
	return *c.snap, true, nil
}

func (c *MemoryCache) Store(_ context.Context, snap Snapshot) error {
	c.mu.Lock()
	c.snap = &snap
	c.mu.Unlock()
	return nil
}
