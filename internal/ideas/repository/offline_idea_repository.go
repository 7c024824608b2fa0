package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/mapper"
	"golang-stock-ideas/pkg/apperror"
	"golang-stock-ideas/pkg/common"
	"golang-stock-ideas/pkg/idgen"
	"golang-stock-ideas/pkg/logger"
	"golang-stock-ideas/pkg/utils"
)

// OfflineIdeaRepository is the local mirror. Besides the shared CRUD set it can upsert a
// record verbatim, evict it without touching its baseline, and hold baselines.
type OfflineIdeaRepository interface {
	IdeaRepository
	BaselineRepository
	// Put stores idea under its own id, replacing any previous copy.
	Put(ctx context.Context, idea *entity.StockIdea) error
	// Evict drops the record but keeps its baseline.
	Evict(ctx context.Context, id string) error
}

// NewOfflineIdeaRepository creates the mirror over store. Records and baselines are kept as
// plain JSON in two tables.
func NewOfflineIdeaRepository(store BlobStore, ids idgen.Generator, log *logger.Logger) OfflineIdeaRepository {
	return &offlineIdeaRepository{
		store:  store,
		ids:    ids,
		logger: log,
		now:    utils.TimeNowUTC,
	}
}

type offlineIdeaRepository struct {
	mu     sync.Mutex
	store  BlobStore
	ids    idgen.Generator
	logger *logger.Logger
	now    func() time.Time
}

func (r *offlineIdeaRepository) Create(ctx context.Context, idea *entity.StockIdea) (*entity.StockIdea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := idea.Clone()
	if stored.IsNew() {
		stored.ID = r.ids.NewID()
	}
	now := r.now()
	stored.CreatedAt = &now
	stored.UpdatedAt = &now
	normalizeCollections(stored)

	if err := r.write(ctx, stored); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

func (r *offlineIdeaRepository) Get(ctx context.Context, id string) (*entity.StockIdea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(ctx, id)
}

func (r *offlineIdeaRepository) Update(ctx context.Context, id string, partial *entity.StockIdea, mask mapper.FieldMask) (*entity.StockIdea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.read(ctx, id)
	if err != nil {
		return nil, err
	}
	if partial == nil {
		partial = &entity.StockIdea{}
	}
	if mask == nil {
		mask = mapper.AllFields()
	}

	merged, err := mapper.Merge(stored, partial, mask)
	if err != nil {
		return nil, err
	}
	now := r.now()
	merged.UpdatedAt = &now

	if err := r.write(ctx, merged); err != nil {
		return nil, err
	}
	return merged.Clone(), nil
}

func (r *offlineIdeaRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, common.OfflineTableStockIdeas, id); err != nil {
		return fmt.Errorf("failed to delete offline stock idea %s: %w", id, err)
	}
	if err := r.store.Delete(ctx, common.OfflineTableBaselines, id); err != nil {
		return fmt.Errorf("failed to delete offline baseline %s: %w", id, err)
	}
	return nil
}

func (r *offlineIdeaRepository) List(ctx context.Context, pageSize int) ([]entity.StockIdea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blobs, err := r.store.List(ctx, common.OfflineTableStockIdeas)
	if err != nil {
		return nil, fmt.Errorf("failed to list offline stock ideas: %w", err)
	}

	ideas := make([]entity.StockIdea, 0, len(blobs))
	for key, data := range blobs {
		var idea entity.StockIdea
		if err := json.Unmarshal(data, &idea); err != nil {
			r.logger.ErrorContext(ctx, "Failed to decode offline stock idea", logger.ErrorField(err), logger.StringField("id", key))
			return nil, apperror.NewMapping(common.OfflineTableStockIdeas+"/"+key, err.Error())
		}
		ideas = append(ideas, idea)
	}

	// Ids are timestamp prefixed, so this is close to creation order.
	sort.Slice(ideas, func(i, j int) bool { return ideas[i].ID < ideas[j].ID })
	if pageSize > 0 && len(ideas) > pageSize {
		ideas = ideas[:pageSize]
	}
	return ideas, nil
}

func (r *offlineIdeaRepository) Put(ctx context.Context, idea *entity.StockIdea) error {
	if idea.IsNew() {
		return apperror.NewValidation("id", "cannot mirror an idea without id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(ctx, idea)
}

func (r *offlineIdeaRepository) Evict(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, common.OfflineTableStockIdeas, id); err != nil {
		return fmt.Errorf("failed to evict offline stock idea %s: %w", id, err)
	}
	return nil
}

func (r *offlineIdeaRepository) SaveBaseline(ctx context.Context, id string, baseline entity.Baseline) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(baseline)
	if err != nil {
		return fmt.Errorf("failed to marshal baseline %s: %w", id, err)
	}
	if err := r.store.Put(ctx, common.OfflineTableBaselines, id, data); err != nil {
		return fmt.Errorf("failed to save baseline %s: %w", id, err)
	}
	return nil
}

func (r *offlineIdeaRepository) GetBaseline(ctx context.Context, id string) (*entity.Baseline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.store.Get(ctx, common.OfflineTableBaselines, id)
	if errors.Is(err, ErrBlobNotFound) {
		return nil, apperror.NewNotFound("baseline", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get baseline %s: %w", id, err)
	}

	var baseline entity.Baseline
	if err := json.Unmarshal(data, &baseline); err != nil {
		return nil, apperror.NewMapping(common.OfflineTableBaselines+"/"+id, err.Error())
	}
	return &baseline, nil
}

// read and write expect r.mu to be held.
func (r *offlineIdeaRepository) read(ctx context.Context, id string) (*entity.StockIdea, error) {
	data, err := r.store.Get(ctx, common.OfflineTableStockIdeas, id)
	if errors.Is(err, ErrBlobNotFound) {
		return nil, apperror.NewNotFound("stock idea", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offline stock idea %s: %w", id, err)
	}

	var idea entity.StockIdea
	if err := json.Unmarshal(data, &idea); err != nil {
		return nil, apperror.NewMapping(common.OfflineTableStockIdeas+"/"+id, err.Error())
	}
	return &idea, nil
}

func (r *offlineIdeaRepository) write(ctx context.Context, idea *entity.StockIdea) error {
	data, err := json.Marshal(idea)
	if err != nil {
		return fmt.Errorf("failed to marshal stock idea %s: %w", idea.ID, err)
	}
	if err := r.store.Put(ctx, common.OfflineTableStockIdeas, idea.ID, data); err != nil {
		return fmt.Errorf("failed to save offline stock idea %s: %w", idea.ID, err)
	}
	return nil
}
