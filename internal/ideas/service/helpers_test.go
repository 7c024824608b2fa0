package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/mapper"
	"golang-stock-ideas/internal/ideas/repository"
	"golang-stock-ideas/pkg/idgen"
	"golang-stock-ideas/pkg/logger"

	"github.com/stretchr/testify/require"
)

var publishTime = time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// countingRepository records how often the store was written to.
type countingRepository struct {
	repository.IdeaRepository
	mu      sync.Mutex
	updates int
	masks   []mapper.FieldMask
}

func (r *countingRepository) Update(ctx context.Context, id string, partial *entity.StockIdea, mask mapper.FieldMask) (*entity.StockIdea, error) {
	r.mu.Lock()
	r.updates++
	r.masks = append(r.masks, mask)
	r.mu.Unlock()
	return r.IdeaRepository.Update(ctx, id, partial, mask)
}

func (r *countingRepository) updateCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates
}

type recordingNotifier struct {
	published []string
	amended   []entity.ModifiedFlags
	archived  []string
}

func (n *recordingNotifier) NotifyPublished(_ context.Context, idea *entity.StockIdea) error {
	n.published = append(n.published, idea.ID)
	return nil
}

func (n *recordingNotifier) NotifyAmended(_ context.Context, _ *entity.StockIdea, flags entity.ModifiedFlags) error {
	n.amended = append(n.amended, flags)
	return nil
}

func (n *recordingNotifier) NotifyArchived(_ context.Context, idea *entity.StockIdea) error {
	n.archived = append(n.archived, idea.ID)
	return nil
}

type fixture struct {
	offline   repository.OfflineIdeaRepository
	repo      *countingRepository
	notifier  *recordingNotifier
	lifecycle LifecycleService
	ideas     IdeaService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.NewNop()
	offline := repository.NewOfflineIdeaRepository(repository.NewMemoryBlobStore(), idgen.NewTimestampGenerator(), log)
	repo := &countingRepository{IdeaRepository: offline}
	notifier := &recordingNotifier{}
	lifecycle := NewLifecycleService(repo, log,
		WithClock(func() time.Time { return publishTime }),
		WithBaselineRepository(offline),
		WithNotifier(notifier),
	)
	return &fixture{
		offline:   offline,
		repo:      repo,
		notifier:  notifier,
		lifecycle: lifecycle,
		ideas:     NewIdeaService(repo, lifecycle, 0, log),
	}
}

func sampleIdea() *entity.StockIdea {
	return &entity.StockIdea{
		ID:               entity.NewIdeaID,
		UserID:           "user-1",
		Symbol:           "INFY",
		StockName:        "Infosys",
		Exchange:         entity.ExchangeNSE,
		Term:             entity.TermMid,
		Action:           entity.ActionBuy,
		Date:             "2024-02-20",
		EntryPrice:       105,
		TargetPrice:      150,
		Stoploss:         100,
		PotentialLeftPct: 42.8,
		DurationText:     "3m",
		Reason:           "Margin expansion",
		CreatedBy:        "editor-1",
		EntryRangeMin:    ptr(102.0),
		EntryRangeMax:    ptr(108.0),
		Actions:          []entity.TradeAction{},
		Alerts:           []string{},
	}
}

func (f *fixture) createDraft(t *testing.T) *entity.StockIdea {
	t.Helper()
	created, err := f.offline.Create(context.Background(), sampleIdea())
	require.NoError(t, err)
	return created
}
