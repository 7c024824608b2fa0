package service

import (
	"context"
	"time"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/mapper"
	"golang-stock-ideas/internal/ideas/repository"
	"golang-stock-ideas/pkg/apperror"
	"golang-stock-ideas/pkg/logger"
	"golang-stock-ideas/pkg/utils"
)

// IdeaView is a stored idea together with its derived lifecycle data.
type IdeaView struct {
	Idea  *entity.StockIdea
	State State
	Flags entity.ModifiedFlags
}

// LifecycleService drives stock ideas through Draft, Published, Amended and Archived.
//
// Publish is read-then-write without a lock: two concurrent publishes of the same idea
// can both pass the already-published check. Updates are last-writer-wins.
type LifecycleService interface {
	// View loads an idea and derives its state and modified flags.
	View(ctx context.Context, id string) (*IdeaView, error)
	// Publish stamps the publish time and captures the baseline. It fails with
	// apperror.ErrAlreadyPublished, leaving the idea untouched, when it was published before.
	Publish(ctx context.Context, id string) (*IdeaView, error)
	// Amend edits a stored idea and persists only the changed fields.
	Amend(ctx context.Context, id string, changes StockIdeaChanges) (*IdeaView, error)
	// Archive soft-deletes the idea with its exit details. Invalid details are rejected
	// before the store is called.
	Archive(ctx context.Context, id string, exit ExitDetails) (*IdeaView, error)
	// HardDelete permanently removes the idea in any state.
	HardDelete(ctx context.Context, id string) error
}

// Option customizes the lifecycle service.
type Option func(*lifecycleService)

// WithClock replaces the clock used for publish timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *lifecycleService) {
		s.now = now
	}
}

// WithBaselineRepository adds the side-channel baseline store.
func WithBaselineRepository(baselines repository.BaselineRepository) Option {
	return func(s *lifecycleService) {
		s.baselines = baselines
	}
}

// WithNotifier sets the notifier for lifecycle transitions.
func WithNotifier(notifier Notifier) Option {
	return func(s *lifecycleService) {
		s.notifier = notifier
	}
}

// NewLifecycleService creates a new lifecycle service.
func NewLifecycleService(ideaRepo repository.IdeaRepository, logger *logger.Logger, opts ...Option) LifecycleService {
	s := &lifecycleService{
		ideaRepo: ideaRepo,
		notifier: NewNopNotifier(),
		logger:   logger,
		now:      utils.TimeNowUTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type lifecycleService struct {
	ideaRepo  repository.IdeaRepository
	baselines repository.BaselineRepository
	notifier  Notifier
	logger    *logger.Logger
	now       func() time.Time
}

func (s *lifecycleService) View(ctx context.Context, id string) (*IdeaView, error) {
	idea, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return newIdeaView(idea), nil
}

func (s *lifecycleService) Publish(ctx context.Context, id string) (*IdeaView, error) {
	idea, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea.IsArchived() {
		return nil, apperror.ErrArchived
	}
	if idea.IsPublished() {
		s.logger.WarnContext(ctx, "Stock idea already published", logger.StringField("id", id))
		return nil, apperror.ErrAlreadyPublished
	}

	now := s.now()
	baseline := CaptureBaseline(idea)
	partial := &entity.StockIdea{PostedAt: &now, Baseline: &baseline}

	published, err := s.ideaRepo.Update(ctx, id, partial, mapper.NewFieldMask(mapper.FieldPostedAt, mapper.FieldBaseline))
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish stock idea", logger.ErrorField(err), logger.StringField("id", id))
		return nil, err
	}

	if s.baselines != nil {
		if err := s.baselines.SaveBaseline(ctx, id, baseline); err != nil {
			s.logger.ErrorContext(ctx, "Failed to save baseline", logger.ErrorField(err), logger.StringField("id", id))
		}
	}

	if err := s.notifier.NotifyPublished(ctx, published); err != nil {
		s.logger.ErrorContext(ctx, "Failed to send publish notice", logger.ErrorField(err), logger.StringField("id", id))
	}

	s.logger.InfoContext(ctx, "Stock idea published", logger.StringField("id", id), logger.StringField("symbol", published.Symbol))
	return newIdeaView(published), nil
}

func (s *lifecycleService) Amend(ctx context.Context, id string, changes StockIdeaChanges) (*IdeaView, error) {
	idea, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := Edit(idea, changes)
	if err != nil {
		return nil, err
	}
	if len(result.Mask) == 0 {
		return newIdeaView(idea), nil
	}

	updated, err := s.ideaRepo.Update(ctx, id, result.Idea, result.Mask)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to amend stock idea", logger.ErrorField(err), logger.StringField("id", id))
		return nil, err
	}
	if updated.Baseline == nil {
		updated.Baseline = clonedBaseline(idea.Baseline)
	}

	view := newIdeaView(updated)
	before := ComputeDiff(idea.Baseline, idea)
	if view.Idea.IsPublished() && view.Flags != before && view.Flags.Any() {
		if err := s.notifier.NotifyAmended(ctx, view.Idea, view.Flags); err != nil {
			s.logger.ErrorContext(ctx, "Failed to send amend notice", logger.ErrorField(err), logger.StringField("id", id))
		}
	}
	return view, nil
}

func (s *lifecycleService) Archive(ctx context.Context, id string, exit ExitDetails) (*IdeaView, error) {
	if err := ValidateExit(exit); err != nil {
		return nil, err
	}

	idea, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea.IsArchived() {
		return nil, apperror.ErrArchived
	}

	deleted := true
	partial := &entity.StockIdea{
		IsDeleted:    &deleted,
		ExitPrice:    &exit.ExitPrice,
		ExitDate:     &exit.ExitDate,
		ExitTime:     &exit.ExitTime,
		ProfitEarned: exit.ProfitEarned,
	}
	mask := mapper.NewFieldMask(mapper.FieldIsDeleted, mapper.FieldExitPrice, mapper.FieldExitDate, mapper.FieldExitTime)
	if exit.ProfitEarned != nil {
		mask = mask.With(mapper.FieldProfitEarned)
	}

	archived, err := s.ideaRepo.Update(ctx, id, partial, mask)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to archive stock idea", logger.ErrorField(err), logger.StringField("id", id))
		return nil, err
	}
	if archived.Baseline == nil {
		archived.Baseline = clonedBaseline(idea.Baseline)
	}

	if err := s.notifier.NotifyArchived(ctx, archived); err != nil {
		s.logger.ErrorContext(ctx, "Failed to send archive notice", logger.ErrorField(err), logger.StringField("id", id))
	}

	s.logger.InfoContext(ctx, "Stock idea archived", logger.StringField("id", id))
	return newIdeaView(archived), nil
}

func (s *lifecycleService) HardDelete(ctx context.Context, id string) error {
	if err := s.ideaRepo.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete stock idea", logger.ErrorField(err), logger.StringField("id", id))
		return err
	}
	s.logger.InfoContext(ctx, "Stock idea deleted", logger.StringField("id", id))
	return nil
}

// load reads an idea and, for published ideas stored without an inline baseline,
// restores it from the side-channel store.
func (s *lifecycleService) load(ctx context.Context, id string) (*entity.StockIdea, error) {
	idea, err := s.ideaRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea.Baseline != nil || !idea.IsPublished() || s.baselines == nil {
		return idea, nil
	}

	baseline, err := s.baselines.GetBaseline(ctx, id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			s.logger.WarnContext(ctx, "Failed to load baseline", logger.ErrorField(err), logger.StringField("id", id))
		}
		return idea, nil
	}
	idea.Baseline = baseline
	return idea, nil
}

func newIdeaView(idea *entity.StockIdea) *IdeaView {
	return &IdeaView{
		Idea:  idea,
		State: DeriveState(idea),
		Flags: ComputeDiff(idea.Baseline, idea),
	}
}

func clonedBaseline(b *entity.Baseline) *entity.Baseline {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
