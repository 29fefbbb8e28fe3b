package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/DaBenjle/aonapi/internal/apierr"
	"github.com/DaBenjle/aonapi/internal/db"
	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/repos"
	"github.com/DaBenjle/aonapi/internal/types"
)

type CategoryService interface {
	// GetOrCreate resolves a category name to its id, creating the row on
	// first encounter. A lost creation race surfaces as storage_contention
	// so the caller's retry loop can pick up the winner's row.
	GetOrCreate(ctx context.Context, name string) (int64, error)
	GetByID(ctx context.Context, id int64) (*types.Category, error)
	List(ctx context.Context) ([]*types.Category, error)
}

type categoryService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.CategoryRepo

	// Write-through name->id cache with a fixed expiry independent of
	// storage. New names are inserted into the live map instead of dropping
	// it wholesale, so one unseen category does not stampede the store.
	mu      sync.Mutex
	byName  map[string]int64
	expires time.Time
	ttl     time.Duration
}

func NewCategoryService(gdb *gorm.DB, baseLog *logger.Logger, repo repos.CategoryRepo, ttl time.Duration) CategoryService {
	serviceLog := baseLog.With("service", "CategoryService")
	return &categoryService{
		db:   gdb,
		log:  serviceLog,
		repo: repo,
		ttl:  ttl,
	}
}

func (s *categoryService) GetOrCreate(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reloadIfExpiredLocked(ctx); err != nil {
		return 0, err
	}
	if id, ok := s.byName[name]; ok {
		return id, nil
	}

	category := &types.Category{Name: name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.repo.Create(ctx, tx, category)
		return err
	})
	if err != nil {
		if db.IsContention(err) {
			// Another writer created the same name first. Drop the cached
			// view so the retry sees their row.
			s.byName = nil
			return 0, apierr.StorageContention(fmt.Errorf("create category %q: %w", name, err))
		}
		s.log.Error("Create category failed", "name", name, "error", err)
		return 0, fmt.Errorf("create category %q: %w", name, err)
	}

	s.byName[name] = category.ID
	s.log.Info("Created category", "name", name, "category_id", category.ID)
	return category.ID, nil
}

func (s *categoryService) reloadIfExpiredLocked(ctx context.Context) error {
	now := time.Now()
	if s.byName != nil && now.Before(s.expires) {
		return nil
	}
	categories, err := s.repo.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	byName := make(map[string]int64, len(categories))
	for _, category := range categories {
		byName[category.Name] = category.ID
	}
	s.byName = byName
	s.expires = now.Add(s.ttl)
	return nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*types.Category, error) {
	return s.repo.GetByID(ctx, nil, id)
}

func (s *categoryService) List(ctx context.Context) ([]*types.Category, error) {
	return s.repo.List(ctx, nil)
}
