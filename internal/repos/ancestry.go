package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/types"
)

type AncestryRepo interface {
	// Upsert writes records keyed on the upstream-derived id, replacing the
	// stored row on conflict. Refetching a group must never append.
	Upsert(ctx context.Context, tx *gorm.DB, records []*types.Ancestry) ([]*types.Ancestry, error)
	ListByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]*types.Ancestry, error)
	IDsByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]int64, error)
}

type ancestryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAncestryRepo(db *gorm.DB, baseLog *logger.Logger) AncestryRepo {
	repoLog := baseLog.With("repo", "AncestryRepo")
	return &ancestryRepo{db: db, log: repoLog}
}

func (r *ancestryRepo) Upsert(ctx context.Context, tx *gorm.DB, records []*types.Ancestry) ([]*types.Ancestry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(records) == 0 {
		return []*types.Ancestry{}, nil
	}
	if err := transaction.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"uuid_group_id",
			"last_fetched",
			"name",
			"hp",
			"size",
			"speed",
			"ability_boost",
			"ability_flaw",
			"language",
			"vision",
			"rarity",
		}),
	}).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ancestryRepo) ListByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]*types.Ancestry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Ancestry
	if err := transaction.WithContext(ctx).
		Where("uuid_group_id = ?", groupID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ancestryRepo) IDsByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var ids []int64
	if err := transaction.WithContext(ctx).
		Model(&types.Ancestry{}).
		Where("uuid_group_id = ?", groupID).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
