package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/DaBenjle/aonapi/internal/types"
)

// RecordStore is the category-agnostic view of one record table. The fetch
// orchestrator and synchronizer work entirely through this interface; each
// category pairs a store with its serializer so adding a category never
// touches the sync core.
type RecordStore interface {
	Save(ctx context.Context, tx *gorm.DB, records []types.Record) ([]types.Record, error)
	ListByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]types.Record, error)
	IDsByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]int64, error)
}

type ancestryStore struct {
	repo AncestryRepo
}

func NewAncestryStore(repo AncestryRepo) RecordStore {
	return &ancestryStore{repo: repo}
}

func (s *ancestryStore) Save(ctx context.Context, tx *gorm.DB, records []types.Record) ([]types.Record, error) {
	typed := make([]*types.Ancestry, 0, len(records))
	for _, rec := range records {
		a, ok := rec.(*types.Ancestry)
		if !ok {
			return nil, fmt.Errorf("ancestry store got %T", rec)
		}
		typed = append(typed, a)
	}
	saved, err := s.repo.Upsert(ctx, tx, typed)
	if err != nil {
		return nil, err
	}
	return ancestryRecords(saved), nil
}

func (s *ancestryStore) ListByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]types.Record, error) {
	typed, err := s.repo.ListByGroupID(ctx, tx, groupID)
	if err != nil {
		return nil, err
	}
	return ancestryRecords(typed), nil
}

func (s *ancestryStore) IDsByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]int64, error) {
	return s.repo.IDsByGroupID(ctx, tx, groupID)
}

func ancestryRecords(typed []*types.Ancestry) []types.Record {
	records := make([]types.Record, len(typed))
	for i, a := range typed {
		records[i] = a
	}
	return records
}

type classStore struct {
	repo ClassRepo
}

func NewClassStore(repo ClassRepo) RecordStore {
	return &classStore{repo: repo}
}

func (s *classStore) Save(ctx context.Context, tx *gorm.DB, records []types.Record) ([]types.Record, error) {
	typed := make([]*types.Class, 0, len(records))
	for _, rec := range records {
		c, ok := rec.(*types.Class)
		if !ok {
			return nil, fmt.Errorf("class store got %T", rec)
		}
		typed = append(typed, c)
	}
	saved, err := s.repo.Upsert(ctx, tx, typed)
	if err != nil {
		return nil, err
	}
	return classRecords(saved), nil
}

func (s *classStore) ListByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]types.Record, error) {
	typed, err := s.repo.ListByGroupID(ctx, tx, groupID)
	if err != nil {
		return nil, err
	}
	return classRecords(typed), nil
}

func (s *classStore) IDsByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]int64, error) {
	return s.repo.IDsByGroupID(ctx, tx, groupID)
}

func classRecords(typed []*types.Class) []types.Record {
	records := make([]types.Record, len(typed))
	for i, c := range typed {
		records[i] = c
	}
	return records
}

type itemStore struct {
	repo ItemRepo
}

// NewItemStore wraps the generic fallback table.
func NewItemStore(repo ItemRepo) RecordStore {
	return &itemStore{repo: repo}
}

func (s *itemStore) Save(ctx context.Context, tx *gorm.DB, records []types.Record) ([]types.Record, error) {
	typed := make([]*types.Item, 0, len(records))
	for _, rec := range records {
		it, ok := rec.(*types.Item)
		if !ok {
			return nil, fmt.Errorf("item store got %T", rec)
		}
		typed = append(typed, it)
	}
	saved, err := s.repo.Upsert(ctx, tx, typed)
	if err != nil {
		return nil, err
	}
	return itemRecords(saved), nil
}

func (s *itemStore) ListByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]types.Record, error) {
	typed, err := s.repo.ListByGroupID(ctx, tx, groupID)
	if err != nil {
		return nil, err
	}
	return itemRecords(typed), nil
}

func (s *itemStore) IDsByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]int64, error) {
	return s.repo.IDsByGroupID(ctx, tx, groupID)
}

func itemRecords(typed []*types.Item) []types.Record {
	records := make([]types.Record, len(typed))
	for i, it := range typed {
		records[i] = it
	}
	return records
}
