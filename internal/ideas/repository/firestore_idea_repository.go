package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/mapper"
	"golang-stock-ideas/pkg/apperror"
	"golang-stock-ideas/pkg/common"
	"golang-stock-ideas/pkg/firestore"
	"golang-stock-ideas/pkg/logger"
	"golang-stock-ideas/pkg/utils"
)

// NewFirestoreIdeaRepository creates the remote IdeaRepository over the Firestore REST client.
func NewFirestoreIdeaRepository(client firestore.Client, collection string, log *logger.Logger) IdeaRepository {
	if collection == "" {
		collection = common.FirestoreCollectionStockIdeas
	}
	return &firestoreIdeaRepository{
		client:     client,
		collection: collection,
		logger:     log,
		now:        utils.TimeNowUTC,
	}
}

type firestoreIdeaRepository struct {
	client     firestore.Client
	collection string
	logger     *logger.Logger
	now        func() time.Time
}

func (r *firestoreIdeaRepository) Create(ctx context.Context, idea *entity.StockIdea) (*entity.StockIdea, error) {
	toCreate := idea.Clone()
	now := r.now()
	toCreate.CreatedAt = &now
	toCreate.UpdatedAt = &now
	normalizeCollections(toCreate)

	doc, err := mapper.ToDocument(toCreate, nil)
	if err != nil {
		return nil, err
	}
	created, err := r.client.Create(ctx, r.collection, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create stock idea: %w", err)
	}
	stored, err := mapper.FromDocument(*created)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to decode created stock idea", logger.ErrorField(err))
		return nil, err
	}
	return stored, nil
}

func (r *firestoreIdeaRepository) Get(ctx context.Context, id string) (*entity.StockIdea, error) {
	doc, err := r.client.Get(ctx, r.collection, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("stock idea", id)
		}
		return nil, fmt.Errorf("failed to get stock idea %s: %w", id, err)
	}
	return mapper.FromDocument(*doc)
}

func (r *firestoreIdeaRepository) Update(ctx context.Context, id string, partial *entity.StockIdea, mask mapper.FieldMask) (*entity.StockIdea, error) {
	toWrite := &entity.StockIdea{}
	if partial != nil {
		toWrite = partial.Clone()
	}
	toWrite.ID = id
	now := r.now()
	toWrite.UpdatedAt = &now
	if mask == nil {
		mask = mapper.AllFields()
	}
	mask = mask.With(mapper.FieldUpdatedAt)

	doc, err := mapper.ToDocument(toWrite, mask)
	if err != nil {
		return nil, err
	}
	updated, err := r.client.Patch(ctx, r.collection, id, doc, mask)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("stock idea", id)
		}
		return nil, fmt.Errorf("failed to update stock idea %s: %w", id, err)
	}
	return mapper.FromDocument(*updated)
}

func (r *firestoreIdeaRepository) Delete(ctx context.Context, id string) error {
	err := r.client.Delete(ctx, r.collection, id)
	if err == nil || errors.Is(err, apperror.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("failed to delete stock idea %s: %w", id, err)
}

func (r *firestoreIdeaRepository) List(ctx context.Context, pageSize int) ([]entity.StockIdea, error) {
	docs, err := r.client.List(ctx, r.collection, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock ideas: %w", err)
	}

	ideas := make([]entity.StockIdea, 0, len(docs))
	for _, doc := range docs {
		idea, err := mapper.FromDocument(doc)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to decode stock idea", logger.ErrorField(err), logger.StringField("name", doc.Name))
			return nil, err
		}
		ideas = append(ideas, *idea)
	}
	return ideas, nil
}

func normalizeCollections(idea *entity.StockIdea) {
	if idea.Actions == nil {
		idea.Actions = []entity.TradeAction{}
	}
	if idea.Alerts == nil {
		idea.Alerts = []string{}
	}
}
