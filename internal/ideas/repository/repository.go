package repository

import (
	"context"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/mapper"
)

// IdeaRepository is the CRUD capability set shared by the remote store, the offline
// mirror and the mirrored combination of both.
type IdeaRepository interface {
	// Create stores a new idea and returns the stored form with its assigned id.
	Create(ctx context.Context, idea *entity.StockIdea) (*entity.StockIdea, error)
	// Get fails with apperror.ErrNotFound when no idea exists at id.
	Get(ctx context.Context, id string) (*entity.StockIdea, error)
	// Update writes the masked fields of partial onto the stored idea. Fields outside the
	// mask are left untouched, masked fields unset in partial are cleared. A nil mask means
	// every field: the stored idea is replaced by partial. updatedAt is always stamped.
	Update(ctx context.Context, id string, partial *entity.StockIdea, mask mapper.FieldMask) (*entity.StockIdea, error)
	// Delete is a hard delete. Deleting an absent id succeeds.
	Delete(ctx context.Context, id string) error
	// List returns up to pageSize ideas in store order.
	List(ctx context.Context, pageSize int) ([]entity.StockIdea, error)
}

// BaselineRepository is the side-channel keyed store for publish baselines.
type BaselineRepository interface {
	SaveBaseline(ctx context.Context, id string, baseline entity.Baseline) error
	// GetBaseline fails with apperror.ErrNotFound when no baseline was saved for id.
	GetBaseline(ctx context.Context, id string) (*entity.Baseline, error)
}
