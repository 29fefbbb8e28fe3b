package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/DaBenjle/aonapi/internal/aon"
	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/types"
)

// UUIDIndexCache holds the most recent full upstream uuid index. One instance
// exists per process, constructed in main and closed at shutdown.
//
// Refreshes are lazy: Get fetches only when nothing is cached. After each
// successful refresh a single timer is (re)armed to clear the value one TTL
// later, so the next Get refetches. The mutex guards only the cached state;
// the network call runs outside it, deduplicated through singleflight so
// concurrent cold Gets share one upstream request.
type UUIDIndexCache struct {
	log    *logger.Logger
	client aon.Client
	ttl    time.Duration

	mu     sync.Mutex
	index  types.UUIDIndex
	timer  *time.Timer
	closed bool

	flight singleflight.Group
}

func NewUUIDIndexCache(baseLog *logger.Logger, client aon.Client, ttl time.Duration) *UUIDIndexCache {
	return &UUIDIndexCache{
		log:    baseLog.With("service", "UUIDIndexCache"),
		client: client,
		ttl:    ttl,
	}
}

func (c *UUIDIndexCache) Get(ctx context.Context) (types.UUIDIndex, error) {
	c.mu.Lock()
	if c.index != nil {
		index := c.index
		c.mu.Unlock()
		return index, nil
	}
	c.mu.Unlock()

	result, err, _ := c.flight.Do("refresh", func() (interface{}, error) {
		index, err := c.client.FetchIndex(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.index = index
		c.rearmLocked()
		c.mu.Unlock()
		c.log.Info("Refreshed uuid index", "groups", len(index))
		return index, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(types.UUIDIndex), nil
}

// Invalidate clears the cached index and re-arms the expiry timer. It does
// not refetch; the next Get will.
func (c *UUIDIndexCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = nil
	c.rearmLocked()
	c.log.Debug("Invalidated uuid index cache")
}

// Close cancels the pending expiry timer. The cache must not be used after.
func (c *UUIDIndexCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// rearmLocked replaces any pending timer with a fresh one. Callers hold c.mu,
// which is also what keeps a firing timer from racing a concurrent read.
func (c *UUIDIndexCache) rearmLocked() {
	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.ttl, c.Invalidate)
}
