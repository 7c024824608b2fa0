package mapper

import (
	"fmt"
	"reflect"
	"time"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/pkg/apperror"
	"golang-stock-ideas/pkg/firestore"
)

type fieldCodec struct {
	name   string
	encode func(idea *entity.StockIdea) (firestore.Value, bool)
	decode func(fields firestore.Fields, idea *entity.StockIdea) error
}

// ideaCodecs is ordered the way a full document is laid out.
var ideaCodecs = []fieldCodec{
	stringField(FieldUserID, func(s *entity.StockIdea) *string { return &s.UserID }),
	stringField(FieldSymbol, func(s *entity.StockIdea) *string { return &s.Symbol }),
	stringField(FieldStockName, func(s *entity.StockIdea) *string { return &s.StockName }),
	{
		name:   FieldExchange,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) { return firestore.String(string(s.Exchange)), true },
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			s.Exchange = entity.Exchange(f.String(FieldExchange))
			return nil
		},
	},
	{
		name:   FieldTerm,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) { return firestore.String(string(s.Term)), true },
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			s.Term = entity.Term(f.String(FieldTerm))
			return nil
		},
	},
	{
		name:   FieldAction,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) { return firestore.String(string(s.Action)), true },
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			s.Action = entity.Action(f.String(FieldAction))
			return nil
		},
	},
	stringField(FieldDate, func(s *entity.StockIdea) *string { return &s.Date }),
	floatField(FieldEntryPrice, func(s *entity.StockIdea) *float64 { return &s.EntryPrice }),
	optionalFloatField(FieldEntryRangeMin, func(s *entity.StockIdea) **float64 { return &s.EntryRangeMin }),
	optionalFloatField(FieldEntryRangeMax, func(s *entity.StockIdea) **float64 { return &s.EntryRangeMax }),
	floatField(FieldTargetPrice, func(s *entity.StockIdea) *float64 { return &s.TargetPrice }),
	floatField(FieldStoploss, func(s *entity.StockIdea) *float64 { return &s.Stoploss }),
	floatField(FieldPotentialLeftPct, func(s *entity.StockIdea) *float64 { return &s.PotentialLeftPct }),
	stringField(FieldDurationText, func(s *entity.StockIdea) *string { return &s.DurationText }),
	stringField(FieldReason, func(s *entity.StockIdea) *string { return &s.Reason }),
	stringField(FieldCreatedBy, func(s *entity.StockIdea) *string { return &s.CreatedBy }),
	optionalFloatField(FieldCMP, func(s *entity.StockIdea) **float64 { return &s.CMP }),
	optionalFloatField(FieldChangePct, func(s *entity.StockIdea) **float64 { return &s.ChangePct }),
	optionalStringField(FieldImageURL, func(s *entity.StockIdea) **string { return &s.ImageURL }),
	optionalStringField(FieldResearchReportURL, func(s *entity.StockIdea) **string { return &s.ResearchReportURL }),
	timeField(FieldPostedAt, func(s *entity.StockIdea) **time.Time { return &s.PostedAt }),
	optionalFloatField(FieldExitPrice, func(s *entity.StockIdea) **float64 { return &s.ExitPrice }),
	optionalStringField(FieldExitDate, func(s *entity.StockIdea) **string { return &s.ExitDate }),
	optionalStringField(FieldExitTime, func(s *entity.StockIdea) **string { return &s.ExitTime }),
	optionalStringField(FieldProfitEarned, func(s *entity.StockIdea) **string { return &s.ProfitEarned }),
	{
		name: FieldIsDeleted,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) {
			if s.IsDeleted == nil {
				return firestore.Value{}, false
			}
			return firestore.Bool(*s.IsDeleted), true
		},
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			s.IsDeleted = f.OptionalBool(FieldIsDeleted)
			return nil
		},
	},
	timeField(FieldCreatedAt, func(s *entity.StockIdea) **time.Time { return &s.CreatedAt }),
	timeField(FieldUpdatedAt, func(s *entity.StockIdea) **time.Time { return &s.UpdatedAt }),
	{
		name: FieldActions,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) {
			values := make([]firestore.Value, 0, len(s.Actions))
			for _, a := range s.Actions {
				values = append(values, TradeActionToValue(a))
			}
			return firestore.Array(values...), true
		},
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			entries, err := f.MapList(FieldActions)
			if err != nil {
				return err
			}
			s.Actions = make([]entity.TradeAction, 0, len(entries))
			for _, entry := range entries {
				s.Actions = append(s.Actions, TradeActionFromFields(entry))
			}
			return nil
		},
	},
	{
		name: FieldAlerts,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) {
			return firestore.StringArray(s.Alerts), true
		},
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			s.Alerts = f.StringList(FieldAlerts)
			return nil
		},
	},
	{
		name: FieldBaseline,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) {
			if s.Baseline == nil {
				return firestore.Value{}, false
			}
			return BaselineToValue(*s.Baseline), true
		},
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			nested, ok, err := f.Map(FieldBaseline)
			if err != nil || !ok {
				return err
			}
			b := BaselineFromFields(nested)
			s.Baseline = &b
			return nil
		},
	},
}

var codecsByName = func() map[string]fieldCodec {
	m := make(map[string]fieldCodec, len(ideaCodecs))
	for _, c := range ideaCodecs {
		m[c.name] = c
	}
	return m
}()

// AllFields returns every known field name in document order.
func AllFields() FieldMask {
	mask := make(FieldMask, 0, len(ideaCodecs))
	for _, c := range ideaCodecs {
		mask = append(mask, c.name)
	}
	return mask
}

// IsKnownField reports whether name is a stock idea document field.
func IsKnownField(name string) bool {
	_, ok := codecsByName[name]
	return ok
}

// ToDocument encodes idea. With a nil mask every field is encoded (full create);
// otherwise only the masked fields are. A masked field whose value is unset is left out
// of the body, which a masked PATCH interprets as "remove".
func ToDocument(idea *entity.StockIdea, mask FieldMask) (firestore.Document, error) {
	names := mask
	if names == nil {
		names = AllFields()
	}

	fields := make(firestore.Fields, len(names))
	for _, name := range names {
		codec, ok := codecsByName[name]
		if !ok {
			return firestore.Document{}, apperror.NewValidation(name, "unknown field in mask")
		}
		if v, present := codec.encode(idea); present {
			fields[name] = v
		}
	}

	doc := firestore.Document{Fields: fields}
	if !idea.IsNew() {
		doc.Name = idea.ID
	}
	return doc, nil
}

// FromDocument decodes every known field of doc. Absent optional fields stay nil and
// absent required fields decode to their zero value; the id is the last segment of the
// document name.
func FromDocument(doc firestore.Document) (*entity.StockIdea, error) {
	id := doc.ID()
	if id == "" {
		return nil, apperror.NewMapping("name", "document has no resource name")
	}

	fields := doc.Fields
	if fields == nil {
		fields = firestore.Fields{}
	}

	idea := &entity.StockIdea{ID: id}
	for _, codec := range ideaCodecs {
		if err := codec.decode(fields, idea); err != nil {
			return nil, fmt.Errorf("failed to decode stock idea %s: %w", id, err)
		}
	}
	return idea, nil
}

// ChangedFields returns the fields whose encoded value differs between before and after.
func ChangedFields(before, after *entity.StockIdea) FieldMask {
	changed := FieldMask{}
	for _, codec := range ideaCodecs {
		bv, bok := codec.encode(before)
		av, aok := codec.encode(after)
		if bok != aok || !reflect.DeepEqual(bv, av) {
			changed = append(changed, codec.name)
		}
	}
	return changed
}

// Merge applies the masked fields of partial onto stored the way a masked PATCH does:
// masked fields present in partial overwrite, masked fields unset in partial are removed,
// unmasked fields are left alone.
func Merge(stored, partial *entity.StockIdea, mask FieldMask) (*entity.StockIdea, error) {
	base, err := ToDocument(stored, nil)
	if err != nil {
		return nil, err
	}
	patch, err := ToDocument(partial, mask)
	if err != nil {
		return nil, err
	}

	for _, name := range mask {
		if v, ok := patch.Fields[name]; ok {
			base.Fields[name] = v
		} else {
			delete(base.Fields, name)
		}
	}
	base.Name = stored.ID
	return FromDocument(base)
}

func stringField(name string, ref func(*entity.StockIdea) *string) fieldCodec {
	return fieldCodec{
		name:   name,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) { return firestore.String(*ref(s)), true },
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			*ref(s) = f.String(name)
			return nil
		},
	}
}

func floatField(name string, ref func(*entity.StockIdea) *float64) fieldCodec {
	return fieldCodec{
		name:   name,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) { return firestore.Double(*ref(s)), true },
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			*ref(s) = f.Float(name)
			return nil
		},
	}
}

func optionalFloatField(name string, ref func(*entity.StockIdea) **float64) fieldCodec {
	return fieldCodec{
		name: name,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) {
			p := *ref(s)
			if p == nil {
				return firestore.Value{}, false
			}
			return firestore.Double(*p), true
		},
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			*ref(s) = f.OptionalFloat(name)
			return nil
		},
	}
}

func optionalStringField(name string, ref func(*entity.StockIdea) **string) fieldCodec {
	return fieldCodec{
		name: name,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) {
			p := *ref(s)
			if p == nil {
				return firestore.Value{}, false
			}
			return firestore.String(*p), true
		},
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			*ref(s) = f.OptionalString(name)
			return nil
		},
	}
}

func timeField(name string, ref func(*entity.StockIdea) **time.Time) fieldCodec {
	return fieldCodec{
		name: name,
		encode: func(s *entity.StockIdea) (firestore.Value, bool) {
			p := *ref(s)
			if p == nil {
				return firestore.Value{}, false
			}
			return firestore.Timestamp(*p), true
		},
		decode: func(f firestore.Fields, s *entity.StockIdea) error {
			t, err := f.OptionalTime(name)
			if err != nil {
				return err
			}
			*ref(s) = t
			return nil
		},
	}
}
