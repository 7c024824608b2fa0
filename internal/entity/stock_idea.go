package entity

import (
	"time"
)

// NewIdeaID is the placeholder id of an idea that has never been saved.
const NewIdeaID = "new"

type Exchange string

const (
	ExchangeNSE Exchange = "NSE"
	ExchangeBSE Exchange = "BSE"
)

// Valid reports whether e is a known exchange.
func (e Exchange) Valid() bool {
	return e == ExchangeNSE || e == ExchangeBSE
}

type Term string

const (
	TermShort Term = "short"
	TermMid   Term = "mid"
	TermLong  Term = "long"
)

// Valid reports whether t is a known term.
func (t Term) Valid() bool {
	return t == TermShort || t == TermMid || t == TermLong
}

type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// Valid reports whether a is a known recommendation.
func (a Action) Valid() bool {
	return a == ActionBuy || a == ActionSell || a == ActionHold
}

// StockIdea is a stock recommendation as edited and published by the desk.
// Pointer fields are optional: nil means unset, which is distinct from a zero value.
type StockIdea struct {
	ID string `json:"id,omitempty"`

	UserID           string   `json:"userId"`
	Symbol           string   `json:"stockSymbol"`
	StockName        string   `json:"stockName"`
	Exchange         Exchange `json:"stockExchange"`
	Term             Term     `json:"term"`
	Action           Action   `json:"recommendation"`
	Date             string   `json:"date"`
	EntryPrice       float64  `json:"entryPrice"`
	TargetPrice      float64  `json:"targetPrice"`
	Stoploss         float64  `json:"stoploss"`
	PotentialLeftPct float64  `json:"potentialLeftPct"`
	DurationText     string   `json:"durationText"`
	Reason           string   `json:"reason"`
	CreatedBy        string   `json:"createdBy"`

	CMP               *float64   `json:"cmp,omitempty"`
	ChangePct         *float64   `json:"changePct,omitempty"`
	EntryRangeMin     *float64   `json:"entryRangeMin,omitempty"`
	EntryRangeMax     *float64   `json:"entryRangeMax,omitempty"`
	ImageURL          *string    `json:"imageUrl,omitempty"`
	ResearchReportURL *string    `json:"researchReportUrl,omitempty"`
	PostedAt          *time.Time `json:"postedAt,omitempty"`
	ExitPrice         *float64   `json:"exitPrice,omitempty"`
	ExitDate          *string    `json:"exitDate,omitempty"`
	ExitTime          *string    `json:"exitTime,omitempty"`
	ProfitEarned      *string    `json:"profitEarned,omitempty"`
	IsDeleted         *bool      `json:"isDeleted,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`

	Actions []TradeAction `json:"actions"`
	Alerts  []string      `json:"alerts"`

	// Baseline is captured once, at first publish.
	Baseline *Baseline `json:"baseline,omitempty"`
}

// Baseline is the snapshot of publish-sensitive fields taken at first publish.
type Baseline struct {
	Stoploss     float64 `json:"stoploss"`
	TargetPrice  float64 `json:"targetPrice"`
	DurationText string  `json:"durationText"`
}

// ModifiedFlags tells which publish-sensitive fields moved away from the baseline.
type ModifiedFlags struct {
	StoplossChanged    bool `json:"stoplossChanged"`
	TargetPriceChanged bool `json:"targetPriceChanged"`
	DurationChanged    bool `json:"durationChanged"`
}

// Any reports whether at least one flag is set.
func (f ModifiedFlags) Any() bool {
	return f.StoplossChanged || f.TargetPriceChanged || f.DurationChanged
}

// IsNew reports whether the idea has never been saved.
func (s *StockIdea) IsNew() bool {
	return s.ID == "" || s.ID == NewIdeaID
}

// IsPublished reports whether the idea carries a publish timestamp.
func (s *StockIdea) IsPublished() bool {
	return s.PostedAt != nil
}

// IsArchived reports whether the soft-delete flag is set.
func (s *StockIdea) IsArchived() bool {
	return s.IsDeleted != nil && *s.IsDeleted
}

// IsOutsideBuyZone reports whether the current market price left the entry range.
// It is false whenever the price or either bound is missing.
func (s *StockIdea) IsOutsideBuyZone() bool {
	if s.CMP == nil || s.EntryRangeMin == nil || s.EntryRangeMax == nil {
		return false
	}
	if *s.CMP == 0 || *s.EntryRangeMin == 0 || *s.EntryRangeMax == 0 {
		return false
	}
	return *s.CMP < *s.EntryRangeMin || *s.CMP > *s.EntryRangeMax
}

// Clone returns a deep copy; edits on the copy never reach the original.
func (s *StockIdea) Clone() *StockIdea {
	if s == nil {
		return nil
	}
	c := *s

	c.CMP = clonePtr(s.CMP)
	c.ChangePct = clonePtr(s.ChangePct)
	c.EntryRangeMin = clonePtr(s.EntryRangeMin)
	c.EntryRangeMax = clonePtr(s.EntryRangeMax)
	c.ImageURL = clonePtr(s.ImageURL)
	c.ResearchReportURL = clonePtr(s.ResearchReportURL)
	c.PostedAt = clonePtr(s.PostedAt)
	c.ExitPrice = clonePtr(s.ExitPrice)
	c.ExitDate = clonePtr(s.ExitDate)
	c.ExitTime = clonePtr(s.ExitTime)
	c.ProfitEarned = clonePtr(s.ProfitEarned)
	c.IsDeleted = clonePtr(s.IsDeleted)
	c.CreatedAt = clonePtr(s.CreatedAt)
	c.UpdatedAt = clonePtr(s.UpdatedAt)
	c.Baseline = clonePtr(s.Baseline)

	if s.Actions != nil {
		c.Actions = make([]TradeAction, len(s.Actions))
		copy(c.Actions, s.Actions)
	}
	if s.Alerts != nil {
		c.Alerts = make([]string, len(s.Alerts))
		copy(c.Alerts, s.Alerts)
	}
	return &c
}

// AddAction appends an action.
func (s *StockIdea) AddAction(action TradeAction) {
	s.Actions = append(s.Actions, action)
}

// RemoveAction drops the action with the given id. It reports whether one was removed.
func (s *StockIdea) RemoveAction(id string) bool {
	kept := make([]TradeAction, 0, len(s.Actions))
	for _, a := range s.Actions {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	removed := len(kept) != len(s.Actions)
	s.Actions = kept
	return removed
}

// AddAlert appends an alert message.
func (s *StockIdea) AddAlert(alert string) {
	s.Alerts = append(s.Alerts, alert)
}

// RemoveAlert drops the alert at index. Out-of-range indexes are ignored.
func (s *StockIdea) RemoveAlert(index int) bool {
	if index < 0 || index >= len(s.Alerts) {
		return false
	}
	kept := make([]string, 0, len(s.Alerts)-1)
	kept = append(kept, s.Alerts[:index]...)
	kept = append(kept, s.Alerts[index+1:]...)
	s.Alerts = kept
	return true
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
