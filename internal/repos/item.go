package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/types"
)

type ItemRepo interface {
	// Upsert writes generic records keyed on (uuid_group_id, source_id), the
	// only stable identity a fallback payload carries. Primary keys are
	// database-assigned and filled in on return.
	Upsert(ctx context.Context, tx *gorm.DB, records []*types.Item) ([]*types.Item, error)
	ListByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]*types.Item, error)
	IDsByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]int64, error)
}

type itemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
	repoLog := baseLog.With("repo", "ItemRepo")
	return &itemRepo{db: db, log: repoLog}
}

func (r *itemRepo) Upsert(ctx context.Context, tx *gorm.DB, records []*types.Item) ([]*types.Item, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(records) == 0 {
		return []*types.Item{}, nil
	}
	if err := transaction.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uuid_group_id"}, {Name: "source_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"last_fetched",
			"category_name",
			"data",
		}),
	}).Create(&records).Error; err != nil {
		return nil, err
	}
	// On conflict-update the insert does not report back the existing primary
	// key, so reload any record the database did not assign one.
	for _, rec := range records {
		if rec.ID != 0 {
			continue
		}
		var existing types.Item
		if err := transaction.WithContext(ctx).
			Where("uuid_group_id = ? AND source_id = ?", rec.UUIDGroupID, rec.SourceID).
			First(&existing).Error; err != nil {
			return nil, err
		}
		rec.ID = existing.ID
	}
	return records, nil
}

func (r *itemRepo) ListByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]*types.Item, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Item
	if err := transaction.WithContext(ctx).
		Where("uuid_group_id = ?", groupID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *itemRepo) IDsByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var ids []int64
	if err := transaction.WithContext(ctx).
		Model(&types.Item{}).
		Where("uuid_group_id = ?", groupID).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
