package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestStockIdea_CloneIsDeep(t *testing.T) {
	posted := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	orig := &StockIdea{
		ID:       "a1",
		Stoploss: 100,
		CMP:      ptr(2565.0),
		PostedAt: &posted,
		Baseline: &Baseline{Stoploss: 100, TargetPrice: 150, DurationText: "3m"},
		Actions:  []TradeAction{{ID: "1", Kind: TradeActionAveraging, EntryPrice: 2560}},
		Alerts:   []string{"watch results"},
	}

	c := orig.Clone()
	*c.CMP = 1
	c.Baseline.Stoploss = 1
	c.Actions[0].EntryPrice = 1
	c.Alerts[0] = "changed"
	c.AddAlert("new")
	*c.PostedAt = time.Time{}

	assert.Equal(t, 2565.0, *orig.CMP)
	assert.Equal(t, 100.0, orig.Baseline.Stoploss)
	assert.Equal(t, 2560.0, orig.Actions[0].EntryPrice)
	assert.Equal(t, []string{"watch results"}, orig.Alerts)
	assert.True(t, posted.Equal(*orig.PostedAt))
}

func TestStockIdea_CloneNil(t *testing.T) {
	var s *StockIdea
	assert.Nil(t, s.Clone())
}

func TestStockIdea_States(t *testing.T) {
	s := &StockIdea{ID: NewIdeaID}
	assert.True(t, s.IsNew())
	assert.False(t, s.IsPublished())
	assert.False(t, s.IsArchived())

	s.IsDeleted = ptr(false)
	assert.False(t, s.IsArchived())
	s.IsDeleted = ptr(true)
	assert.True(t, s.IsArchived())
}

func TestStockIdea_IsOutsideBuyZone(t *testing.T) {
	s := &StockIdea{EntryRangeMin: ptr(2550.0), EntryRangeMax: ptr(2575.0)}
	assert.False(t, s.IsOutsideBuyZone())

	s.CMP = ptr(2560.0)
	assert.False(t, s.IsOutsideBuyZone())

	s.CMP = ptr(2600.0)
	assert.True(t, s.IsOutsideBuyZone())

	s.CMP = ptr(2500.0)
	assert.True(t, s.IsOutsideBuyZone())
}

func TestStockIdea_ActionsAndAlerts(t *testing.T) {
	s := &StockIdea{}
	s.AddAction(TradeAction{ID: "1"})
	s.AddAction(TradeAction{ID: "2"})
	assert.True(t, s.RemoveAction("1"))
	assert.False(t, s.RemoveAction("nope"))
	require.Len(t, s.Actions, 1)
	assert.Equal(t, "2", s.Actions[0].ID)

	s.AddAlert("a")
	s.AddAlert("b")
	s.AddAlert("c")
	assert.True(t, s.RemoveAlert(1))
	assert.False(t, s.RemoveAlert(5))
	assert.Equal(t, []string{"a", "c"}, s.Alerts)
}

func TestRecentUpdates(t *testing.T) {
	actions := []TradeAction{
		{ID: "1", Date: "2024-01-01T00:00:00Z"},
		{ID: "2", Date: "2024-03-01T00:00:00Z"},
		{ID: "3", Date: "2024-02-01"},
		{ID: "4", Date: "2024-04-01T00:00:00Z"},
	}

	recent := RecentUpdates(actions, 3)
	require.Len(t, recent, 3)
	assert.Equal(t, "4", recent[0].ID)
	assert.Equal(t, "2", recent[1].ID)
	assert.Equal(t, "3", recent[2].ID)
	assert.Equal(t, "1", actions[0].ID, "input order must be preserved")

	assert.Empty(t, RecentUpdates(nil, 3))
}

func TestFormatTradeAction(t *testing.T) {
	assert.Equal(t, "Averaging @ 2560 on 02 Jan",
		FormatTradeAction(TradeAction{Kind: TradeActionAveraging, EntryPrice: 2560, Date: "2024-01-02T10:00:00Z"}))
	assert.Equal(t, "Partial booking @ 2610.5 on 15 Feb",
		FormatTradeAction(TradeAction{Kind: TradeActionPartialBooking, EntryPrice: 2610.5, Date: "2024-02-15"}))
	assert.Equal(t, "Alert added @ 10 on someday",
		FormatTradeAction(TradeAction{Kind: TradeActionAddAlert, EntryPrice: 10, Date: "someday"}))
}
