package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/types"
)

type ClassRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, records []*types.Class) ([]*types.Class, error)
	ListByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]*types.Class, error)
	IDsByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]int64, error)
}

type classRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClassRepo(db *gorm.DB, baseLog *logger.Logger) ClassRepo {
	repoLog := baseLog.With("repo", "ClassRepo")
	return &classRepo{db: db, log: repoLog}
}

func (r *classRepo) Upsert(ctx context.Context, tx *gorm.DB, records []*types.Class) ([]*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(records) == 0 {
		return []*types.Class{}, nil
	}
	if err := transaction.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"uuid_group_id",
			"last_fetched",
			"name",
			"ability",
			"hp",
			"tradition",
			"attack_proficiency",
			"defense_proficiency",
			"skill_proficiency",
			"fortitude_save_proficiency",
			"reflex_save_proficiency",
			"will_save_proficiency",
			"perception_proficiency",
			"rarity",
		}),
	}).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *classRepo) ListByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Class
	if err := transaction.WithContext(ctx).
		Where("uuid_group_id = ?", groupID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *classRepo) IDsByGroupID(ctx context.Context, tx *gorm.DB, groupID int64) ([]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var ids []int64
	if err := transaction.WithContext(ctx).
		Model(&types.Class{}).
		Where("uuid_group_id = ?", groupID).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
