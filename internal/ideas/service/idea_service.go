package service

import (
	"context"
	"strings"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/dto"
	"golang-stock-ideas/internal/ideas/repository"
	"golang-stock-ideas/pkg/apperror"
	"golang-stock-ideas/pkg/common"
	"golang-stock-ideas/pkg/logger"
)

const recentUpdatesShown = 3

// IdeaService defines the interface for managing stock ideas.
type IdeaService interface {
	CreateIdea(ctx context.Context, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error)
	GetIdea(ctx context.Context, id string) (*dto.IdeaResponse, error)
	ListIdeas(ctx context.Context, query *dto.ListIdeasQuery) ([]*dto.IdeaResponse, error)
	UpdateIdea(ctx context.Context, id string, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error)
	PublishIdea(ctx context.Context, id string) (*dto.IdeaResponse, error)
	ArchiveIdea(ctx context.Context, id string, req *dto.ArchiveIdeaRequest) (*dto.IdeaResponse, error)
	DeleteIdea(ctx context.Context, id string) error
}

// NewIdeaService creates a new idea service.
func NewIdeaService(ideaRepo repository.IdeaRepository, lifecycle LifecycleService, defaultPageSize int, logger *logger.Logger) IdeaService {
	if defaultPageSize <= 0 {
		defaultPageSize = common.DefaultListPageSize
	}
	return &ideaService{
		ideaRepo:        ideaRepo,
		lifecycle:       lifecycle,
		defaultPageSize: defaultPageSize,
		logger:          logger,
	}
}

type ideaService struct {
	ideaRepo        repository.IdeaRepository
	lifecycle       LifecycleService
	defaultPageSize int
	logger          *logger.Logger
}

// CreateIdea validates and stores a new draft.
func (s *ideaService) CreateIdea(ctx context.Context, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error) {
	idea := &entity.StockIdea{
		ID:                entity.NewIdeaID,
		UserID:            req.UserID,
		Symbol:            strings.ToUpper(strings.TrimSpace(req.StockSymbol)),
		StockName:         req.StockName,
		Exchange:          entity.Exchange(req.StockExchange),
		Term:              entity.Term(req.Term),
		Action:            entity.Action(req.Recommendation),
		Date:              req.Date,
		EntryPrice:        req.EntryPrice,
		TargetPrice:       req.TargetPrice,
		Stoploss:          req.Stoploss,
		PotentialLeftPct:  req.PotentialLeftPct,
		DurationText:      req.DurationText,
		Reason:            req.Reason,
		CreatedBy:         req.CreatedBy,
		CMP:               req.CMP,
		ChangePct:         req.ChangePct,
		EntryRangeMin:     req.EntryRangeMin,
		EntryRangeMax:     req.EntryRangeMax,
		ImageURL:          req.ImageURL,
		ResearchReportURL: req.ResearchReportURL,
		Actions:           req.Actions,
		Alerts:            req.Alerts,
	}
	if idea.Actions == nil {
		idea.Actions = []entity.TradeAction{}
	}
	if idea.Alerts == nil {
		idea.Alerts = []string{}
	}

	if err := ValidateIdea(idea); err != nil {
		return nil, err
	}

	created, err := s.ideaRepo.Create(ctx, idea)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create stock idea", logger.ErrorField(err), logger.StringField("symbol", idea.Symbol))
		return nil, err
	}
	s.logger.InfoContext(ctx, "Stock idea created", logger.StringField("id", created.ID), logger.StringField("symbol", created.Symbol))
	return toIdeaResponse(newIdeaView(created)), nil
}

// GetIdea retrieves a stock idea by its ID.
func (s *ideaService) GetIdea(ctx context.Context, id string) (*dto.IdeaResponse, error) {
	view, err := s.lifecycle.View(ctx, id)
	if err != nil {
		return nil, err
	}
	return toIdeaResponse(view), nil
}

// ListIdeas returns stored ideas. Archived ideas are left out unless asked for.
func (s *ideaService) ListIdeas(ctx context.Context, query *dto.ListIdeasQuery) ([]*dto.IdeaResponse, error) {
	if query == nil {
		query = &dto.ListIdeasQuery{}
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}

	wantState := State(strings.ToUpper(query.State))
	if wantState == StateArchived {
		query.IncludeArchived = true
	}

	ideas, err := s.ideaRepo.List(ctx, pageSize)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list stock ideas", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.IdeaResponse, 0, len(ideas))
	for i := range ideas {
		view := newIdeaView(&ideas[i])
		if view.State == StateArchived && !query.IncludeArchived {
			continue
		}
		if wantState != "" && view.State != wantState {
			continue
		}
		if query.Term != "" && string(view.Idea.Term) != query.Term {
			continue
		}
		responses = append(responses, toIdeaResponse(view))
	}
	return responses, nil
}

// UpdateIdea applies an edit through the lifecycle engine.
func (s *ideaService) UpdateIdea(ctx context.Context, id string, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error) {
	changes := StockIdeaChanges{
		UserID:            req.UserID,
		Symbol:            req.StockSymbol,
		StockName:         req.StockName,
		Date:              req.Date,
		EntryPrice:        req.EntryPrice,
		TargetPrice:       req.TargetPrice,
		Stoploss:          req.Stoploss,
		PotentialLeftPct:  req.PotentialLeftPct,
		DurationText:      req.DurationText,
		Reason:            req.Reason,
		CMP:               req.CMP,
		ChangePct:         req.ChangePct,
		EntryRangeMin:     req.EntryRangeMin,
		EntryRangeMax:     req.EntryRangeMax,
		ImageURL:          req.ImageURL,
		ResearchReportURL: req.ResearchReportURL,
		Actions:           req.Actions,
		Alerts:            req.Alerts,
		Clear:             req.Clear,
	}
	if req.StockSymbol != nil {
		symbol := strings.ToUpper(strings.TrimSpace(*req.StockSymbol))
		changes.Symbol = &symbol
	}
	if req.StockExchange != nil {
		v := entity.Exchange(*req.StockExchange)
		changes.Exchange = &v
	}
	if req.Term != nil {
		v := entity.Term(*req.Term)
		changes.Term = &v
	}
	if req.Recommendation != nil {
		v := entity.Action(*req.Recommendation)
		changes.Action = &v
	}
	if changes.IsEmpty() {
		return nil, apperror.NewValidation("", "no changes given")
	}

	view, err := s.lifecycle.Amend(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	return toIdeaResponse(view), nil
}

// PublishIdea publishes a draft.
func (s *ideaService) PublishIdea(ctx context.Context, id string) (*dto.IdeaResponse, error) {
	view, err := s.lifecycle.Publish(ctx, id)
	if err != nil {
		return nil, err
	}
	return toIdeaResponse(view), nil
}

// ArchiveIdea records the exit and soft-deletes the idea.
func (s *ideaService) ArchiveIdea(ctx context.Context, id string, req *dto.ArchiveIdeaRequest) (*dto.IdeaResponse, error) {
	view, err := s.lifecycle.Archive(ctx, id, ExitDetails{
		ExitPrice:    req.ExitPrice,
		ExitDate:     req.ExitDate,
		ExitTime:     req.ExitTime,
		ProfitEarned: req.ProfitEarned,
	})
	if err != nil {
		return nil, err
	}
	return toIdeaResponse(view), nil
}

// DeleteIdea permanently removes an idea.
func (s *ideaService) DeleteIdea(ctx context.Context, id string) error {
	return s.lifecycle.HardDelete(ctx, id)
}

func toIdeaResponse(view *IdeaView) *dto.IdeaResponse {
	recent := entity.RecentUpdates(view.Idea.Actions, recentUpdatesShown)
	lines := make([]string, 0, len(recent))
	for _, a := range recent {
		lines = append(lines, entity.FormatTradeAction(a))
	}
	return &dto.IdeaResponse{
		StockIdea:      view.Idea,
		State:          string(view.State),
		ModifiedFlags:  view.Flags,
		OutsideBuyZone: view.Idea.IsOutsideBuyZone(),
		RecentUpdates:  lines,
	}
}
