package repository

import (
	"context"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/mapper"
	"golang-stock-ideas/pkg/apperror"
	"golang-stock-ideas/pkg/logger"
)

// MirroredIdeaRepository reads and writes the remote store first and keeps a local copy
// of every draft. Published and archived ideas are evicted from the mirror.
type MirroredIdeaRepository interface {
	IdeaRepository
	BaselineRepository
}

// NewMirroredIdeaRepository combines the remote store with the offline mirror.
func NewMirroredIdeaRepository(remote IdeaRepository, mirror OfflineIdeaRepository, log *logger.Logger) MirroredIdeaRepository {
	return &mirroredIdeaRepository{
		remote: remote,
		mirror: mirror,
		logger: log,
	}
}

type mirroredIdeaRepository struct {
	remote IdeaRepository
	mirror OfflineIdeaRepository
	logger *logger.Logger
}

func (r *mirroredIdeaRepository) Create(ctx context.Context, idea *entity.StockIdea) (*entity.StockIdea, error) {
	stored, err := r.remote.Create(ctx, idea)
	if err != nil {
		return nil, err
	}
	r.sync(ctx, stored)
	return stored, nil
}

// Get falls back to the mirror when the remote store cannot be reached.
func (r *mirroredIdeaRepository) Get(ctx context.Context, id string) (*entity.StockIdea, error) {
	idea, err := r.remote.Get(ctx, id)
	if err == nil {
		r.sync(ctx, idea)
		return idea, nil
	}
	if !apperror.IsTransport(err) {
		return nil, err
	}

	r.logger.WarnContext(ctx, "Remote store unavailable, reading stock idea from mirror", logger.ErrorField(err), logger.StringField("id", id))
	local, mirrorErr := r.mirror.Get(ctx, id)
	if mirrorErr != nil {
		return nil, err
	}
	return local, nil
}

func (r *mirroredIdeaRepository) Update(ctx context.Context, id string, partial *entity.StockIdea, mask mapper.FieldMask) (*entity.StockIdea, error) {
	updated, err := r.remote.Update(ctx, id, partial, mask)
	if err != nil {
		return nil, err
	}
	r.sync(ctx, updated)
	return updated, nil
}

func (r *mirroredIdeaRepository) Delete(ctx context.Context, id string) error {
	if err := r.remote.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.mirror.Delete(ctx, id); err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete stock idea from mirror", logger.ErrorField(err), logger.StringField("id", id))
	}
	return nil
}

// List falls back to the mirrored drafts when the remote store cannot be reached.
func (r *mirroredIdeaRepository) List(ctx context.Context, pageSize int) ([]entity.StockIdea, error) {
	ideas, err := r.remote.List(ctx, pageSize)
	if err == nil {
		return ideas, nil
	}
	if !apperror.IsTransport(err) {
		return nil, err
	}

	r.logger.WarnContext(ctx, "Remote store unavailable, listing stock ideas from mirror", logger.ErrorField(err))
	local, mirrorErr := r.mirror.List(ctx, pageSize)
	if mirrorErr != nil {
		return nil, err
	}
	return local, nil
}

func (r *mirroredIdeaRepository) SaveBaseline(ctx context.Context, id string, baseline entity.Baseline) error {
	return r.mirror.SaveBaseline(ctx, id, baseline)
}

func (r *mirroredIdeaRepository) GetBaseline(ctx context.Context, id string) (*entity.Baseline, error) {
	return r.mirror.GetBaseline(ctx, id)
}

// sync keeps drafts in the mirror and evicts everything else. Mirror failures are logged only.
func (r *mirroredIdeaRepository) sync(ctx context.Context, idea *entity.StockIdea) {
	var err error
	if idea.IsPublished() || idea.IsArchived() {
		err = r.mirror.Evict(ctx, idea.ID)
	} else {
		err = r.mirror.Put(ctx, idea)
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to sync stock idea to mirror", logger.ErrorField(err), logger.StringField("id", idea.ID))
	}
}
