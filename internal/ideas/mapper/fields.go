package mapper

import (
	"sort"
)

// Wire field names of a stock idea document.
const (
	FieldUserID            = "userId"
	FieldSymbol            = "stockSymbol"
	FieldStockName         = "stockName"
	FieldExchange          = "stockExchange"
	FieldTerm              = "term"
	FieldAction            = "recommendation"
	FieldDate              = "date"
	FieldEntryPrice        = "entryPrice"
	FieldEntryRangeMin     = "entryRangeMin"
	FieldEntryRangeMax     = "entryRangeMax"
	FieldTargetPrice       = "targetPrice"
	FieldStoploss          = "stoploss"
	FieldPotentialLeftPct  = "potentialLeftPct"
	FieldDurationText      = "durationText"
	FieldReason            = "reason"
	FieldCreatedBy         = "createdBy"
	FieldCMP               = "cmp"
	FieldChangePct         = "changePct"
	FieldImageURL          = "imageUrl"
	FieldResearchReportURL = "researchReportUrl"
	FieldPostedAt          = "postedAt"
	FieldExitPrice         = "exitPrice"
	FieldExitDate          = "exitDate"
	FieldExitTime          = "exitTime"
	FieldProfitEarned      = "profitEarned"
	FieldIsDeleted         = "isDeleted"
	FieldCreatedAt         = "createdAt"
	FieldUpdatedAt         = "updatedAt"
	FieldActions           = "actions"
	FieldAlerts            = "alerts"
	FieldBaseline          = "baseline"
)

// Wire field names of a trade action nested record.
const (
	ActionFieldID            = "id"
	ActionFieldKind          = "type"
	ActionFieldDate          = "date"
	ActionFieldEntryPrice    = "entryPrice"
	ActionFieldEntryRangeMin = "entryRangeMin"
	ActionFieldEntryRangeMax = "entryRangeMax"
	ActionFieldNote          = "note"
)

// Wire field names of the baseline nested record.
const (
	BaselineFieldStoploss     = "stoploss"
	BaselineFieldTargetPrice  = "targetPrice"
	BaselineFieldDurationText = "durationText"
)

// FieldMask lists the document fields a partial write may touch. A nil mask means every field.
type FieldMask []string

// NewFieldMask builds a mask without duplicates, keeping first-seen order.
func NewFieldMask(names ...string) FieldMask {
	m := FieldMask{}
	return m.With(names...)
}

// Contains reports whether name is in the mask.
func (m FieldMask) Contains(name string) bool {
	for _, n := range m {
		if n == name {
			return true
		}
	}
	return false
}

// With returns a copy of the mask with names appended, skipping those already present.
func (m FieldMask) With(names ...string) FieldMask {
	out := make(FieldMask, 0, len(m)+len(names))
	out = append(out, m...)
	for _, n := range names {
		if !out.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Sorted returns a sorted copy of the mask.
func (m FieldMask) Sorted() FieldMask {
	out := make(FieldMask, len(m))
	copy(out, m)
	sort.Strings(out)
	return out
}

// IsEmpty reports whether the mask is non-nil but names nothing.
func (m FieldMask) IsEmpty() bool {
	return m != nil && len(m) == 0
}
