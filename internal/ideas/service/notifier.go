package service

import (
	"context"

	"golang-stock-ideas/internal/entity"
)

// Notifier announces lifecycle transitions. Failures are logged and never fail the transition.
type Notifier interface {
	NotifyPublished(ctx context.Context, idea *entity.StockIdea) error
	NotifyAmended(ctx context.Context, idea *entity.StockIdea, flags entity.ModifiedFlags) error
	NotifyArchived(ctx context.Context, idea *entity.StockIdea) error
}

type nopNotifier struct{}

// NewNopNotifier returns a Notifier that does nothing.
func NewNopNotifier() Notifier {
	return nopNotifier{}
}

func (nopNotifier) NotifyPublished(context.Context, *entity.StockIdea) error { return nil }

func (nopNotifier) NotifyAmended(context.Context, *entity.StockIdea, entity.ModifiedFlags) error {
	return nil
}

func (nopNotifier) NotifyArchived(context.Context, *entity.StockIdea) error { return nil }
