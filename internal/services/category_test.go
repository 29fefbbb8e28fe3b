package services

import (
	"context"
	"testing"
	"time"

	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/repos"
	"github.com/DaBenjle/aonapi/internal/types"
)

func TestGetOrCreateCreatesOnce(t *testing.T) {
	gdb := openTestDB(t)
	log := logger.NewNop()
	svc := NewCategoryService(gdb, log, repos.NewCategoryRepo(gdb, log), 5*time.Minute)
	ctx := context.Background()

	first, err := svc.GetOrCreate(ctx, "ancestry")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	second, err := svc.GetOrCreate(ctx, "ancestry")
	if err != nil {
		t.Fatalf("GetOrCreate second call: %v", err)
	}
	if first != second {
		t.Fatalf("ids differ: %d vs %d", first, second)
	}

	var count int64
	if err := gdb.Model(&types.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("category rows=%d, want 1", count)
	}
}

func TestGetOrCreateWriteThroughCache(t *testing.T) {
	gdb := openTestDB(t)
	log := logger.NewNop()
	svc := NewCategoryService(gdb, log, repos.NewCategoryRepo(gdb, log), 5*time.Minute)
	ctx := context.Background()

	id, err := svc.GetOrCreate(ctx, "class")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	// Remove the row behind the cache's back; a cached directory must still
	// answer from memory within its TTL.
	if err := gdb.Delete(&types.Category{}, id).Error; err != nil {
		t.Fatalf("delete: %v", err)
	}
	again, err := svc.GetOrCreate(ctx, "class")
	if err != nil {
		t.Fatalf("GetOrCreate after delete: %v", err)
	}
	if again != id {
		t.Fatalf("cached id=%d, want %d", again, id)
	}
}

func TestGetOrCreateSeparateNames(t *testing.T) {
	gdb := openTestDB(t)
	log := logger.NewNop()
	svc := NewCategoryService(gdb, log, repos.NewCategoryRepo(gdb, log), 5*time.Minute)
	ctx := context.Background()

	a, err := svc.GetOrCreate(ctx, "ancestry")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	b, err := svc.GetOrCreate(ctx, "feat")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if a == b {
		t.Fatalf("distinct names share id %d", a)
	}

	categories, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("List len=%d, want 2", len(categories))
	}
}
