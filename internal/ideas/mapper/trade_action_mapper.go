package mapper

import (
	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/pkg/firestore"
)

// TradeActionToValue encodes an action as a nested record. Range and note are always written.
func TradeActionToValue(a entity.TradeAction) firestore.Value {
	return firestore.Map(firestore.Fields{
		ActionFieldID:            firestore.String(a.ID),
		ActionFieldKind:          firestore.String(string(a.Kind)),
		ActionFieldDate:          firestore.String(a.Date),
		ActionFieldEntryPrice:    firestore.Double(a.EntryPrice),
		ActionFieldEntryRangeMin: firestore.Double(a.EntryRangeMin),
		ActionFieldEntryRangeMax: firestore.Double(a.EntryRangeMax),
		ActionFieldNote:          firestore.String(a.Note),
	})
}

// TradeActionFromFields decodes a nested action record. A missing note decodes to ""
// and a missing range bound to 0.
func TradeActionFromFields(f firestore.Fields) entity.TradeAction {
	return entity.TradeAction{
		ID:            f.String(ActionFieldID),
		Kind:          entity.TradeActionKind(f.String(ActionFieldKind)),
		Date:          f.String(ActionFieldDate),
		EntryPrice:    f.Float(ActionFieldEntryPrice),
		EntryRangeMin: f.Float(ActionFieldEntryRangeMin),
		EntryRangeMax: f.Float(ActionFieldEntryRangeMax),
		Note:          f.String(ActionFieldNote),
	}
}

// BaselineToValue encodes a baseline snapshot as a nested record.
func BaselineToValue(b entity.Baseline) firestore.Value {
	return firestore.Map(firestore.Fields{
		BaselineFieldStoploss:     firestore.Double(b.Stoploss),
		BaselineFieldTargetPrice:  firestore.Double(b.TargetPrice),
		BaselineFieldDurationText: firestore.String(b.DurationText),
	})
}

// BaselineFromFields decodes a baseline snapshot.
func BaselineFromFields(f firestore.Fields) entity.Baseline {
	return entity.Baseline{
		Stoploss:     f.Float(BaselineFieldStoploss),
		TargetPrice:  f.Float(BaselineFieldTargetPrice),
		DurationText: f.String(BaselineFieldDurationText),
	}
}
