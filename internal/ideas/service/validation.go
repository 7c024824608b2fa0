package service

import (
	"fmt"
	"strings"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/mapper"
	"golang-stock-ideas/pkg/apperror"
)

var clearableFields = map[string]struct{}{
	mapper.FieldCMP:               {},
	mapper.FieldChangePct:         {},
	mapper.FieldEntryRangeMin:     {},
	mapper.FieldEntryRangeMax:     {},
	mapper.FieldImageURL:          {},
	mapper.FieldResearchReportURL: {},
}

// ValidateIdea checks the invariants every stored idea must hold.
func ValidateIdea(idea *entity.StockIdea) error {
	if strings.TrimSpace(idea.Symbol) == "" {
		return apperror.NewValidation(mapper.FieldSymbol, "is required")
	}
	if !idea.Exchange.Valid() {
		return apperror.NewValidation(mapper.FieldExchange, fmt.Sprintf("unknown exchange %q", idea.Exchange))
	}
	if !idea.Term.Valid() {
		return apperror.NewValidation(mapper.FieldTerm, fmt.Sprintf("unknown term %q", idea.Term))
	}
	if !idea.Action.Valid() {
		return apperror.NewValidation(mapper.FieldAction, fmt.Sprintf("unknown recommendation %q", idea.Action))
	}

	for _, price := range []struct {
		field string
		value float64
	}{
		{mapper.FieldEntryPrice, idea.EntryPrice},
		{mapper.FieldTargetPrice, idea.TargetPrice},
		{mapper.FieldStoploss, idea.Stoploss},
	} {
		if price.value < 0 {
			return apperror.NewValidation(price.field, "must not be negative")
		}
	}

	if idea.EntryRangeMin != nil && idea.EntryRangeMax != nil && *idea.EntryRangeMin > *idea.EntryRangeMax {
		return apperror.NewValidation(mapper.FieldEntryRangeMin, "must not exceed entryRangeMax")
	}

	seen := make(map[string]struct{}, len(idea.Actions))
	for i, a := range idea.Actions {
		path := fmt.Sprintf("%s[%d]", mapper.FieldActions, i)
		if a.ID == "" {
			return apperror.NewValidation(path+".id", "is required")
		}
		if _, dup := seen[a.ID]; dup {
			return apperror.NewValidation(path+".id", fmt.Sprintf("duplicate action id %q", a.ID))
		}
		seen[a.ID] = struct{}{}
		if !a.Kind.Valid() {
			return apperror.NewValidation(path+".type", fmt.Sprintf("unknown action type %q", a.Kind))
		}
		if a.EntryRangeMin != 0 && a.EntryRangeMax != 0 && a.EntryRangeMin > a.EntryRangeMax {
			return apperror.NewValidation(path+".entryRangeMin", "must not exceed entryRangeMax")
		}
	}
	return nil
}

// ValidateExit checks exit details before any state is touched.
func ValidateExit(exit ExitDetails) error {
	if exit.ExitPrice <= 0 {
		return apperror.NewValidation(mapper.FieldExitPrice, "must be greater than 0")
	}
	if strings.TrimSpace(exit.ExitDate) == "" {
		return apperror.NewValidation(mapper.FieldExitDate, "is required")
	}
	if strings.TrimSpace(exit.ExitTime) == "" {
		return apperror.NewValidation(mapper.FieldExitTime, "is required")
	}
	return nil
}
