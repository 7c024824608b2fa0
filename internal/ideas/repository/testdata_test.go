package repository

import (
	"fmt"
	"time"

	"golang-stock-ideas/internal/entity"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ptr[T any](v T) *T { return &v }

func draftIdea() *entity.StockIdea {
	return &entity.StockIdea{
		ID:               entity.NewIdeaID,
		UserID:           "user-1",
		Symbol:           "RELIANCE",
		StockName:        "Reliance Industries",
		Exchange:         entity.ExchangeNSE,
		Term:             entity.TermShort,
		Action:           entity.ActionBuy,
		Date:             "2024-01-09",
		EntryPrice:       2569,
		TargetPrice:      2590,
		Stoploss:         2550,
		PotentialLeftPct: 0.8,
		DurationText:     "2 weeks",
		Reason:           "Breakout",
		CreatedBy:        "editor-7",
		EntryRangeMin:    ptr(2550.0),
		EntryRangeMax:    ptr(2575.0),
		Actions: []entity.TradeAction{
			{ID: "a1", Kind: entity.TradeActionAveraging, Date: "2024-01-15", EntryPrice: 2560},
		},
		Alerts: []string{"Results on 20th"},
	}
}

type fixedIDs struct {
	next int
}

func (g *fixedIDs) NewID() string {
	g.next++
	return fmt.Sprintf("local%d", g.next)
}
