package service

import (
	"golang-stock-ideas/internal/entity"
)

// State is the lifecycle position of a stock idea. It is derived, never stored.
type State string

const (
	StateDraft     State = "DRAFT"
	StatePublished State = "PUBLISHED"
	StateAmended   State = "AMENDED"
	StateArchived  State = "ARCHIVED"
)

// DeriveState places idea in the lifecycle. Archived wins over everything; a published
// idea whose sensitive fields moved away from the baseline is Amended.
func DeriveState(idea *entity.StockIdea) State {
	switch {
	case idea.IsArchived():
		return StateArchived
	case !idea.IsPublished():
		return StateDraft
	case ComputeDiff(idea.Baseline, idea).Any():
		return StateAmended
	default:
		return StatePublished
	}
}

// CaptureBaseline snapshots the publish-sensitive fields of idea.
func CaptureBaseline(idea *entity.StockIdea) entity.Baseline {
	return entity.Baseline{
		Stoploss:     idea.Stoploss,
		TargetPrice:  idea.TargetPrice,
		DurationText: idea.DurationText,
	}
}

// ComputeDiff compares the current values of idea with baseline using plain inequality.
// Without a baseline every flag is false.
func ComputeDiff(baseline *entity.Baseline, idea *entity.StockIdea) entity.ModifiedFlags {
	if baseline == nil || idea == nil {
		return entity.ModifiedFlags{}
	}
	return entity.ModifiedFlags{
		StoplossChanged:    baseline.Stoploss != idea.Stoploss,
		TargetPriceChanged: baseline.TargetPrice != idea.TargetPrice,
		DurationChanged:    baseline.DurationText != idea.DurationText,
	}
}

// StockIdeaChanges is an edit of a stock idea. Nil fields are left as they are.
// The publish timestamp, baseline and exit fields are not editable here.
type StockIdeaChanges struct {
	UserID            *string
	Symbol            *string
	StockName         *string
	Exchange          *entity.Exchange
	Term              *entity.Term
	Action            *entity.Action
	Date              *string
	EntryPrice        *float64
	TargetPrice       *float64
	Stoploss          *float64
	PotentialLeftPct  *float64
	DurationText      *string
	Reason            *string
	CMP               *float64
	ChangePct         *float64
	EntryRangeMin     *float64
	EntryRangeMax     *float64
	ImageURL          *string
	ResearchReportURL *string
	Actions           *[]entity.TradeAction
	Alerts            *[]string

	// Clear unsets optional fields by wire name (cmp, changePct, entryRangeMin,
	// entryRangeMax, imageUrl, researchReportUrl).
	Clear []string
}

// IsEmpty reports whether the changes touch nothing.
func (c StockIdeaChanges) IsEmpty() bool {
	return c.UserID == nil && c.Symbol == nil && c.StockName == nil &&
		c.Exchange == nil && c.Term == nil && c.Action == nil && c.Date == nil &&
		c.EntryPrice == nil && c.TargetPrice == nil && c.Stoploss == nil &&
		c.PotentialLeftPct == nil && c.DurationText == nil && c.Reason == nil &&
		c.CMP == nil && c.ChangePct == nil && c.EntryRangeMin == nil && c.EntryRangeMax == nil &&
		c.ImageURL == nil && c.ResearchReportURL == nil && c.Actions == nil && c.Alerts == nil &&
		len(c.Clear) == 0
}

// ExitDetails are the mandatory exit fields recorded when an idea is archived.
type ExitDetails struct {
	ExitPrice    float64
	ExitDate     string
	ExitTime     string
	ProfitEarned *string
}
