package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/types"
)

type UUIDGroupRepo interface {
	Create(ctx context.Context, tx *gorm.DB, group *types.UUIDGroup) (*types.UUIDGroup, error)
	// GetByUUID returns (nil, nil) when no group carries the uuid.
	GetByUUID(ctx context.Context, tx *gorm.DB, uuid string) (*types.UUIDGroup, error)
	ListByCategoryID(ctx context.Context, tx *gorm.DB, categoryID int64) ([]*types.UUIDGroup, error)
	UpdateLabel(ctx context.Context, tx *gorm.DB, id int64, label string) error
}

type uuidGroupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUUIDGroupRepo(db *gorm.DB, baseLog *logger.Logger) UUIDGroupRepo {
	repoLog := baseLog.With("repo", "UUIDGroupRepo")
	return &uuidGroupRepo{db: db, log: repoLog}
}

func (r *uuidGroupRepo) Create(ctx context.Context, tx *gorm.DB, group *types.UUIDGroup) (*types.UUIDGroup, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

func (r *uuidGroupRepo) GetByUUID(ctx context.Context, tx *gorm.DB, uuid string) (*types.UUIDGroup, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.UUIDGroup
	err := transaction.WithContext(ctx).
		Where("uuid = ?", uuid).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *uuidGroupRepo) ListByCategoryID(ctx context.Context, tx *gorm.DB, categoryID int64) ([]*types.UUIDGroup, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.UUIDGroup
	if err := transaction.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *uuidGroupRepo) UpdateLabel(ctx context.Context, tx *gorm.DB, id int64, label string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.UUIDGroup{}).
		Where("id = ?", id).
		Update("label", label).Error
}
