package service

import (
	"context"
	"testing"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/dto"
	"golang-stock-ideas/internal/ideas/mapper"
	"golang-stock-ideas/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)

	view, err := f.lifecycle.Publish(ctx, draft.ID)
	require.NoError(t, err)

	assert.Equal(t, StatePublished, view.State)
	require.NotNil(t, view.Idea.PostedAt)
	assert.Equal(t, publishTime, *view.Idea.PostedAt)
	assert.Equal(t, &entity.Baseline{Stoploss: 100, TargetPrice: 150, DurationText: "3m"}, view.Idea.Baseline)
	assert.Equal(t, mapper.FieldMask{mapper.FieldPostedAt, mapper.FieldBaseline}, f.repo.masks[0])

	saved, err := f.offline.GetBaseline(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, *view.Idea.Baseline, *saved)

	assert.Equal(t, []string{draft.ID}, f.notifier.published)
}

func TestPublish_Twice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)

	first, err := f.lifecycle.Publish(ctx, draft.ID)
	require.NoError(t, err)

	_, err = f.lifecycle.Publish(ctx, draft.ID)
	assert.ErrorIs(t, err, apperror.ErrAlreadyPublished)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, 1, f.repo.updateCount())

	stored, err := f.lifecycle.View(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Idea.PostedAt, stored.Idea.PostedAt)
	assert.Equal(t, first.Idea.Baseline, stored.Idea.Baseline)
}

func TestPublish_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.lifecycle.Publish(context.Background(), "missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestBaselineImmutability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)

	published, err := f.lifecycle.Publish(ctx, draft.ID)
	require.NoError(t, err)
	want := *published.Idea.Baseline

	edits := []StockIdeaChanges{
		{Stoploss: ptr(110.0)},
		{DurationText: ptr("6m")},
		{TargetPrice: ptr(170.0), Reason: ptr("Raised guidance")},
		{Stoploss: ptr(100.0), TargetPrice: ptr(150.0), DurationText: ptr("3m")},
	}
	for _, changes := range edits {
		view, err := f.lifecycle.Amend(ctx, draft.ID, changes)
		require.NoError(t, err)
		assert.Equal(t, want, *view.Idea.Baseline)
	}

	for _, mask := range f.repo.masks[1:] {
		assert.NotContains(t, mask, mapper.FieldBaseline)
		assert.NotContains(t, mask, mapper.FieldPostedAt)
	}

	saved, err := f.offline.GetBaseline(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *saved)
}

func TestAmend_FlagsAndNotices(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)

	view, err := f.lifecycle.Amend(ctx, draft.ID, StockIdeaChanges{Stoploss: ptr(99.0)})
	require.NoError(t, err)
	assert.Equal(t, StateDraft, view.State)
	assert.Empty(t, f.notifier.amended, "drafts are not announced")

	_, err = f.lifecycle.Publish(ctx, draft.ID)
	require.NoError(t, err)

	view, err = f.lifecycle.Amend(ctx, draft.ID, StockIdeaChanges{Stoploss: ptr(110.0), DurationText: ptr("6m")})
	require.NoError(t, err)
	assert.Equal(t, StateAmended, view.State)
	assert.Equal(t, entity.ModifiedFlags{StoplossChanged: true, DurationChanged: true}, view.Flags)

	_, err = f.lifecycle.Amend(ctx, draft.ID, StockIdeaChanges{Reason: ptr("Same levels, new note")})
	require.NoError(t, err)

	assert.Equal(t, []entity.ModifiedFlags{{StoplossChanged: true, DurationChanged: true}}, f.notifier.amended)
}

func TestAmend_NoChangesSkipsStore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)

	view, err := f.lifecycle.Amend(ctx, draft.ID, StockIdeaChanges{Stoploss: ptr(draft.Stoploss)})
	require.NoError(t, err)
	assert.Equal(t, draft.Stoploss, view.Idea.Stoploss)
	assert.Zero(t, f.repo.updateCount())
}

func TestArchive_ValidationHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)

	_, err := f.lifecycle.Archive(ctx, draft.ID, ExitDetails{ExitPrice: 0, ExitDate: "", ExitTime: ""})
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, f.repo.updateCount())

	stored, err := f.lifecycle.View(ctx, draft.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Idea.IsDeleted)
	assert.Nil(t, stored.Idea.ExitPrice)
}

func TestArchive_ExcludedFromDefaultList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)
	other := f.createDraft(t)

	_, err := f.lifecycle.Publish(ctx, draft.ID)
	require.NoError(t, err)

	view, err := f.lifecycle.Archive(ctx, draft.ID, ExitDetails{ExitPrice: 120.5, ExitDate: "2024-01-01", ExitTime: "10:30"})
	require.NoError(t, err)
	assert.Equal(t, StateArchived, view.State)
	assert.Equal(t, 120.5, *view.Idea.ExitPrice)
	assert.Equal(t, "2024-01-01", *view.Idea.ExitDate)
	assert.Equal(t, "10:30", *view.Idea.ExitTime)
	assert.Nil(t, view.Idea.ProfitEarned)
	assert.Equal(t, []string{draft.ID}, f.notifier.archived)

	listed, err := f.ideas.ListIdeas(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, other.ID, listed[0].ID)

	withArchived, err := f.ideas.ListIdeas(ctx, &dto.ListIdeasQuery{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, withArchived, 2)

	_, err = f.lifecycle.View(ctx, draft.ID)
	assert.NoError(t, err, "archived ideas stay in storage")
}

func TestArchive_IsTerminal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)

	exit := ExitDetails{ExitPrice: 120.5, ExitDate: "2024-01-01", ExitTime: "10:30", ProfitEarned: ptr("14.7%")}
	view, err := f.lifecycle.Archive(ctx, draft.ID, exit)
	require.NoError(t, err)
	assert.Equal(t, "14.7%", *view.Idea.ProfitEarned)

	_, err = f.lifecycle.Archive(ctx, draft.ID, exit)
	assert.ErrorIs(t, err, apperror.ErrArchived)
	_, err = f.lifecycle.Publish(ctx, draft.ID)
	assert.ErrorIs(t, err, apperror.ErrArchived)
	_, err = f.lifecycle.Amend(ctx, draft.ID, StockIdeaChanges{Stoploss: ptr(1.0)})
	assert.ErrorIs(t, err, apperror.ErrArchived)
}

func TestHardDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)

	_, err := f.lifecycle.Publish(ctx, draft.ID)
	require.NoError(t, err)

	require.NoError(t, f.lifecycle.HardDelete(ctx, draft.ID))
	require.NoError(t, f.lifecycle.HardDelete(ctx, draft.ID))

	_, err = f.lifecycle.View(ctx, draft.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = f.offline.GetBaseline(ctx, draft.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestView_RestoresBaselineFromSideChannel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	legacy := sampleIdea()
	legacy.ID = "legacy1"
	legacy.PostedAt = &publishTime
	legacy.Stoploss = 90
	require.NoError(t, f.offline.Put(ctx, legacy))
	require.NoError(t, f.offline.SaveBaseline(ctx, legacy.ID, entity.Baseline{Stoploss: 100, TargetPrice: 150, DurationText: "3m"}))

	view, err := f.lifecycle.View(ctx, legacy.ID)
	require.NoError(t, err)
	assert.Equal(t, StateAmended, view.State)
	assert.True(t, view.Flags.StoplossChanged)
}
