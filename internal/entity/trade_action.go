package entity

import (
	"fmt"
	"sort"
	"time"
)

type TradeActionKind string

const (
	TradeActionAveraging      TradeActionKind = "AVERAGING"
	TradeActionPartialBooking TradeActionKind = "PARTIAL_BOOKING"
	TradeActionAddAlert       TradeActionKind = "ADD_ALERT"
)

// Valid reports whether k is a known action kind.
func (k TradeActionKind) Valid() bool {
	switch k {
	case TradeActionAveraging, TradeActionPartialBooking, TradeActionAddAlert:
		return true
	}
	return false
}

// TradeAction is a sub-ledger entry of a stock idea. It has no life outside its parent.
type TradeAction struct {
	ID            string          `json:"id"`
	Kind          TradeActionKind `json:"type"`
	Date          string          `json:"date"`
	EntryPrice    float64         `json:"entryPrice"`
	EntryRangeMin float64         `json:"entryRangeMin"`
	EntryRangeMax float64         `json:"entryRangeMax"`
	Note          string          `json:"note"`
}

// RecentUpdates returns up to n actions, most recent date first. The input slice is left untouched.
func RecentUpdates(actions []TradeAction, n int) []TradeAction {
	if len(actions) == 0 || n <= 0 {
		return []TradeAction{}
	}
	sorted := make([]TradeAction, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseActionDate(sorted[i].Date).After(parseActionDate(sorted[j].Date))
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// FormatTradeAction renders a one-line summary such as "Averaging @ 2560 on 02 Jan".
func FormatTradeAction(a TradeAction) string {
	date := a.Date
	if t := parseActionDate(a.Date); !t.IsZero() {
		date = t.Format("02 Jan")
	}
	price := fmt.Sprintf("%g", a.EntryPrice)

	switch a.Kind {
	case TradeActionAveraging:
		return fmt.Sprintf("Averaging @ %s on %s", price, date)
	case TradeActionPartialBooking:
		return fmt.Sprintf("Partial booking @ %s on %s", price, date)
	case TradeActionAddAlert:
		return fmt.Sprintf("Alert added @ %s on %s", price, date)
	default:
		return fmt.Sprintf("%s @ %s on %s", a.Kind, price, date)
	}
}

func parseActionDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
