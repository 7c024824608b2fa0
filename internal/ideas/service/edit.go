package service

import (
	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/mapper"
	"golang-stock-ideas/pkg/apperror"
)

// EditResult is the outcome of applying changes to an idea in memory.
type EditResult struct {
	Idea  *entity.StockIdea
	Mask  mapper.FieldMask
	Flags entity.ModifiedFlags
}

// Edit applies changes to a copy of idea, validates the result and recomputes the
// modified flags against the baseline. idea itself is never modified, and the publish
// timestamp and baseline are carried over untouched.
func Edit(idea *entity.StockIdea, changes StockIdeaChanges) (*EditResult, error) {
	if idea.IsArchived() {
		return nil, apperror.ErrArchived
	}
	for _, name := range changes.Clear {
		if _, ok := clearableFields[name]; !ok {
			return nil, apperror.NewValidation(name, "field cannot be cleared")
		}
	}

	edited := idea.Clone()
	applyChanges(edited, changes)

	if err := ValidateIdea(edited); err != nil {
		return nil, err
	}

	return &EditResult{
		Idea:  edited,
		Mask:  mapper.ChangedFields(idea, edited),
		Flags: ComputeDiff(edited.Baseline, edited),
	}, nil
}

func applyChanges(idea *entity.StockIdea, c StockIdeaChanges) {
	setString(&idea.UserID, c.UserID)
	setString(&idea.Symbol, c.Symbol)
	setString(&idea.StockName, c.StockName)
	if c.Exchange != nil {
		idea.Exchange = *c.Exchange
	}
	if c.Term != nil {
		idea.Term = *c.Term
	}
	if c.Action != nil {
		idea.Action = *c.Action
	}
	setString(&idea.Date, c.Date)
	setFloat(&idea.EntryPrice, c.EntryPrice)
	setFloat(&idea.TargetPrice, c.TargetPrice)
	setFloat(&idea.Stoploss, c.Stoploss)
	setFloat(&idea.PotentialLeftPct, c.PotentialLeftPct)
	setString(&idea.DurationText, c.DurationText)
	setString(&idea.Reason, c.Reason)

	setOptional(&idea.CMP, c.CMP)
	setOptional(&idea.ChangePct, c.ChangePct)
	setOptional(&idea.EntryRangeMin, c.EntryRangeMin)
	setOptional(&idea.EntryRangeMax, c.EntryRangeMax)
	setOptional(&idea.ImageURL, c.ImageURL)
	setOptional(&idea.ResearchReportURL, c.ResearchReportURL)

	if c.Actions != nil {
		idea.Actions = make([]entity.TradeAction, len(*c.Actions))
		copy(idea.Actions, *c.Actions)
	}
	if c.Alerts != nil {
		idea.Alerts = make([]string, len(*c.Alerts))
		copy(idea.Alerts, *c.Alerts)
	}

	for _, name := range c.Clear {
		switch name {
		case mapper.FieldCMP:
			idea.CMP = nil
		case mapper.FieldChangePct:
			idea.ChangePct = nil
		case mapper.FieldEntryRangeMin:
			idea.EntryRangeMin = nil
		case mapper.FieldEntryRangeMax:
			idea.EntryRangeMax = nil
		case mapper.FieldImageURL:
			idea.ImageURL = nil
		case mapper.FieldResearchReportURL:
			idea.ResearchReportURL = nil
		}
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setOptional[T any](dst **T, v *T) {
	if v != nil {
		val := *v
		*dst = &val
	}
}
