package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/DaBenjle/aonapi/internal/apierr"
	"github.com/DaBenjle/aonapi/internal/db"
	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/repos"
	"github.com/DaBenjle/aonapi/internal/serializers"
	"github.com/DaBenjle/aonapi/internal/types"
)

type RegistrarService interface {
	// RegisterAll upserts every (uuid, members) pair of the index into
	// uuid_group, creating categories as needed. Idempotent; existing groups
	// are skipped so labels survive. One uuid failing never aborts the
	// batch; the only returned error is context cancellation.
	RegisterAll(ctx context.Context, index types.UUIDIndex) error
}

type registrarService struct {
	db              *gorm.DB
	log             *logger.Logger
	categoryService CategoryService
	groupRepo       repos.UUIDGroupRepo

	maxAttempts int
	retryDelay  time.Duration
}

func NewRegistrarService(
	gdb *gorm.DB,
	baseLog *logger.Logger,
	categoryService CategoryService,
	groupRepo repos.UUIDGroupRepo,
	maxAttempts int,
	retryDelay time.Duration,
) RegistrarService {
	serviceLog := baseLog.With("service", "RegistrarService")
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &registrarService{
		db:              gdb,
		log:             serviceLog,
		categoryService: categoryService,
		groupRepo:       groupRepo,
		maxAttempts:     maxAttempts,
		retryDelay:      retryDelay,
	}
}

func (s *registrarService) RegisterAll(ctx context.Context, index types.UUIDIndex) error {
	created, skipped, failed := 0, 0, 0
	for uuid, members := range index {
		if err := ctx.Err(); err != nil {
			return err
		}
		didCreate, err := s.registerOne(ctx, uuid, members)
		switch {
		case err != nil:
			failed++
		case didCreate:
			created++
		default:
			skipped++
		}
	}
	s.log.Info("Registered uuid index", "created", created, "skipped", skipped, "failed", failed)
	return nil
}

func (s *registrarService) registerOne(ctx context.Context, uuid string, members []string) (bool, error) {
	categoryName := "unknown"
	if len(members) > 0 {
		if prefix := serializers.CategoryPrefix(members[0]); prefix != "" {
			categoryName = prefix
		}
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		created, err := s.tryRegister(ctx, uuid, categoryName)
		if err == nil {
			return created, nil
		}
		lastErr = err
		if !isRetryable(err) {
			s.log.Error("Register uuid failed", "uuid", uuid, "category", categoryName, "error", err)
			return false, err
		}
		if attempt < s.maxAttempts {
			s.log.Warn("Register uuid hit contention, retrying", "uuid", uuid, "attempt", attempt, "error", err)
			select {
			case <-ctx.Done():
				return false, ctx.Err()
			case <-time.After(s.retryDelay):
			}
		}
	}
	s.log.Error("Register uuid failed after retries, skipping for this pass",
		"uuid", uuid, "category", categoryName, "attempts", s.maxAttempts, "error", lastErr)
	return false, lastErr
}

func (s *registrarService) tryRegister(ctx context.Context, uuid, categoryName string) (bool, error) {
	categoryID, err := s.categoryService.GetOrCreate(ctx, categoryName)
	if err != nil {
		return false, err
	}

	created := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.groupRepo.GetByUUID(ctx, tx, uuid)
		if err != nil {
			return err
		}
		if existing != nil {
			// Registration never overwrites a group, label included.
			return nil
		}
		if _, err := s.groupRepo.Create(ctx, tx, &types.UUIDGroup{
			UUID:       uuid,
			CategoryID: categoryID,
		}); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func isRetryable(err error) bool {
	return apierr.Is(err, apierr.CodeStorageContention) || db.IsContention(err)
}
