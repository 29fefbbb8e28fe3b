package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/DaBenjle/aonapi/internal/aon"
	"github.com/DaBenjle/aonapi/internal/apierr"
	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/repos"
	"github.com/DaBenjle/aonapi/internal/serializers"
	"github.com/DaBenjle/aonapi/internal/types"
)

// SyncResult is what one synchronization pass for one group produced.
// MissingIDs are records still in storage but absent from the fresh payload;
// they are reported, never deleted.
type SyncResult struct {
	Records       []types.Record
	ParseFailures int
	MissingIDs    []int64
}

type NethysDataService interface {
	// GetDataByUUID is the read-through cache: stored records newer than the
	// freshness window are served as-is; anything stale or missing triggers
	// one upstream fetch, a store, and a reconciliation pass.
	GetDataByUUID(ctx context.Context, uuid string) ([]types.Record, error)
	SyncGroup(ctx context.Context, group *types.UUIDGroup, categoryName string, payload []json.RawMessage) (SyncResult, error)
	UpdateLabel(ctx context.Context, uuid, label string) error
}

type nethysDataService struct {
	db              *gorm.DB
	log             *logger.Logger
	groupRepo       repos.UUIDGroupRepo
	categoryService CategoryService
	registry        *serializers.Registry
	stores          map[string]repos.RecordStore
	fallbackStore   repos.RecordStore
	client          aon.Client
	freshnessWindow time.Duration
}

func NewNethysDataService(
	gdb *gorm.DB,
	baseLog *logger.Logger,
	groupRepo repos.UUIDGroupRepo,
	categoryService CategoryService,
	registry *serializers.Registry,
	stores map[string]repos.RecordStore,
	fallbackStore repos.RecordStore,
	client aon.Client,
	freshnessWindow time.Duration,
) NethysDataService {
	serviceLog := baseLog.With("service", "NethysDataService")
	return &nethysDataService{
		db:              gdb,
		log:             serviceLog,
		groupRepo:       groupRepo,
		categoryService: categoryService,
		registry:        registry,
		stores:          stores,
		fallbackStore:   fallbackStore,
		client:          client,
		freshnessWindow: freshnessWindow,
	}
}

func (s *nethysDataService) GetDataByUUID(ctx context.Context, uuid string) ([]types.Record, error) {
	group, err := s.groupRepo.GetByUUID(ctx, nil, uuid)
	if err != nil {
		return nil, fmt.Errorf("look up uuid group: %w", err)
	}
	if group == nil {
		return nil, apierr.UnknownUUID(uuid)
	}

	category, err := s.categoryService.GetByID(ctx, group.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("look up category %d: %w", group.CategoryID, err)
	}

	store := s.storeFor(category.Name)
	records, err := store.ListByGroupID(ctx, nil, group.ID)
	if err != nil {
		return nil, fmt.Errorf("load records for group %d: %w", group.ID, err)
	}

	if len(records) > 0 && s.allFresh(records) {
		s.log.Debug("Serving group from storage", "uuid", uuid, "records", len(records))
		return records, nil
	}

	payload, err := s.client.FetchGroup(ctx, uuid)
	if err != nil {
		return nil, err
	}

	result, err := s.SyncGroup(ctx, group, category.Name, payload)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

func (s *nethysDataService) allFresh(records []types.Record) bool {
	cutoff := time.Now().Add(-s.freshnessWindow)
	for _, record := range records {
		if record.FetchedAt().Before(cutoff) {
			return false
		}
	}
	return true
}

func (s *nethysDataService) SyncGroup(ctx context.Context, group *types.UUIDGroup, categoryName string, payload []json.RawMessage) (SyncResult, error) {
	store := s.storeFor(categoryName)
	serializer := s.registry.ForCategory(categoryName)
	fetchedAt := time.Now()

	parsed := make([]types.Record, 0, len(payload))
	failures := 0
	for i, raw := range payload {
		record, err := serializer.Parse(raw, group.ID, fetchedAt)
		if err != nil {
			// One malformed item must not sink the batch.
			failures++
			s.log.Warn("Skipping unparsable upstream item",
				"uuid", group.UUID, "category", categoryName, "index", i, "error", err)
			continue
		}
		parsed = append(parsed, record)
	}

	storedBefore, err := store.IDsByGroupID(ctx, nil, group.ID)
	if err != nil {
		return SyncResult{}, fmt.Errorf("load stored ids for group %d: %w", group.ID, err)
	}

	var saved []types.Record
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		saved, err = store.Save(ctx, tx, parsed)
		return err
	})
	if err != nil {
		return SyncResult{}, fmt.Errorf("store records for group %d: %w", group.ID, err)
	}

	missing := reconcile(storedBefore, saved)
	if len(missing) > 0 {
		// Observability only; stale rows are kept until someone decides
		// otherwise.
		s.log.Warn("Stored records missing from fresh data",
			"uuid", group.UUID, "category", categoryName, "missing_ids", missing)
	}

	s.log.Info("Synchronized group",
		"uuid", group.UUID, "category", categoryName,
		"stored", len(saved), "parse_failures", failures, "missing", len(missing))

	return SyncResult{Records: saved, ParseFailures: failures, MissingIDs: missing}, nil
}

// reconcile returns ids present in storage before the pass but absent from
// the freshly saved set.
func reconcile(storedBefore []int64, saved []types.Record) []int64 {
	freshIDs := make(map[int64]struct{}, len(saved))
	for _, record := range saved {
		freshIDs[record.RecordID()] = struct{}{}
	}
	var missing []int64
	for _, id := range storedBefore {
		if _, ok := freshIDs[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func (s *nethysDataService) UpdateLabel(ctx context.Context, uuid, label string) error {
	group, err := s.groupRepo.GetByUUID(ctx, nil, uuid)
	if err != nil {
		return fmt.Errorf("look up uuid group: %w", err)
	}
	if group == nil {
		return apierr.UnknownUUID(uuid)
	}
	return s.groupRepo.UpdateLabel(ctx, nil, group.ID, label)
}

func (s *nethysDataService) storeFor(categoryName string) repos.RecordStore {
	if store, ok := s.stores[categoryName]; ok {
		return store
	}
	return s.fallbackStore
}
