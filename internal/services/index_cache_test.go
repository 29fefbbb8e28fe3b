package services

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DaBenjle/aonapi/internal/apierr"
	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/types"
)

type stubIndexClient struct {
	indexCalls atomic.Int32
	index      types.UUIDIndex
	err        error
}

func (s *stubIndexClient) FetchIndex(ctx context.Context) (types.UUIDIndex, error) {
	s.indexCalls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.index, nil
}

func (s *stubIndexClient) FetchGroup(ctx context.Context, uuid string) ([]json.RawMessage, error) {
	return nil, apierr.UpstreamMissing(uuid)
}

func TestIndexCacheRefreshesOnce(t *testing.T) {
	client := &stubIndexClient{index: types.UUIDIndex{"abc": {"ancestry-1"}}}
	cache := NewUUIDIndexCache(logger.NewNop(), client, time.Hour)
	defer cache.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		index, err := cache.Get(ctx)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(index) != 1 {
			t.Fatalf("index len=%d, want 1", len(index))
		}
	}
	if calls := client.indexCalls.Load(); calls != 1 {
		t.Fatalf("upstream calls=%d, want 1", calls)
	}
}

func TestIndexCacheInvalidateForcesRefetch(t *testing.T) {
	client := &stubIndexClient{index: types.UUIDIndex{"abc": {"ancestry-1"}}}
	cache := NewUUIDIndexCache(logger.NewNop(), client, time.Hour)
	defer cache.Close()
	ctx := context.Background()

	if _, err := cache.Get(ctx); err != nil {
		t.Fatalf("Get: %v", err)
	}
	cache.Invalidate()
	if _, err := cache.Get(ctx); err != nil {
		t.Fatalf("Get after invalidate: %v", err)
	}
	if calls := client.indexCalls.Load(); calls != 2 {
		t.Fatalf("upstream calls=%d, want 2", calls)
	}
}

func TestIndexCacheExpiresOnTimer(t *testing.T) {
	client := &stubIndexClient{index: types.UUIDIndex{"abc": {"ancestry-1"}}}
	cache := NewUUIDIndexCache(logger.NewNop(), client, 30*time.Millisecond)
	defer cache.Close()
	ctx := context.Background()

	if _, err := cache.Get(ctx); err != nil {
		t.Fatalf("Get: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	if _, err := cache.Get(ctx); err != nil {
		t.Fatalf("Get after expiry: %v", err)
	}
	if calls := client.indexCalls.Load(); calls != 2 {
		t.Fatalf("upstream calls=%d, want 2", calls)
	}
}

func TestIndexCacheUpstreamFailure(t *testing.T) {
	client := &stubIndexClient{err: apierr.UpstreamUnavailable(context.DeadlineExceeded)}
	cache := NewUUIDIndexCache(logger.NewNop(), client, time.Hour)
	defer cache.Close()

	if _, err := cache.Get(context.Background()); !apierr.Is(err, apierr.CodeUpstreamUnavailable) {
		t.Fatalf("expected upstream_unavailable, got %v", err)
	}
	// Failure must not poison the cache: a later Get tries again.
	client.err = nil
	client.index = types.UUIDIndex{"abc": {"ancestry-1"}}
	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("Get after recovery: %v", err)
	}
}
