package firestore

import (
	"fmt"
	"time"

	"golang-stock-ideas/pkg/apperror"
)

// Fields is the field map of a document or of a nested map value.
//
// The accessors decode defensively: a missing field, or a scalar under an
// unexpected tag, yields the zero value. Structural mismatches on list and map
// fields are reported as *apperror.MappingError.
type Fields map[string]Value

// Has reports whether the field is present with any tag.
func (f Fields) Has(name string) bool {
	v, ok := f[name]
	return ok && v.Kind() != KindNone
}

// String returns the string under name, or "".
func (f Fields) String(name string) string {
	s, _ := f[name].AsString()
	return s
}

// OptionalString returns nil when the field has no string tag.
func (f Fields) OptionalString(name string) *string {
	s, ok := f[name].AsString()
	if !ok {
		return nil
	}
	return &s
}

// Float returns the number under either numeric tag, or 0.
func (f Fields) Float(name string) float64 {
	n, _ := f[name].AsFloat()
	return n
}

// OptionalFloat returns nil when the field has no numeric tag.
func (f Fields) OptionalFloat(name string) *float64 {
	n, ok := f[name].AsFloat()
	if !ok {
		return nil
	}
	return &n
}

// Bool returns the boolean under name, or false.
func (f Fields) Bool(name string) bool {
	b, _ := f[name].AsBool()
	return b
}

// OptionalBool returns nil when the field has no boolean tag.
func (f Fields) OptionalBool(name string) *bool {
	b, ok := f[name].AsBool()
	if !ok {
		return nil
	}
	return &b
}

// OptionalTime parses a timestamp (or ISO string) field. An unparsable value is a mapping error.
func (f Fields) OptionalTime(name string) (*time.Time, error) {
	t, ok, err := f[name].AsTime()
	if err != nil {
		return nil, apperror.NewMapping(name, fmt.Sprintf("invalid timestamp: %v", err))
	}
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// StringList returns the string entries of an array field, skipping entries without a string tag.
func (f Fields) StringList(name string) []string {
	out := []string{}
	v, ok := f[name]
	if !ok || v.ArrayValue == nil {
		return out
	}
	for _, item := range v.ArrayValue.Values {
		if s, ok := item.AsString(); ok {
			out = append(out, s)
		}
	}
	return out
}

// MapList returns the nested records of an array field. Every entry must carry a map tag.
func (f Fields) MapList(name string) ([]Fields, error) {
	v, ok := f[name]
	if !ok || v.Kind() == KindNone {
		return []Fields{}, nil
	}
	if v.ArrayValue == nil {
		return nil, apperror.NewMapping(name, fmt.Sprintf("expected arrayValue, got %s", v.Kind()))
	}

	out := make([]Fields, 0, len(v.ArrayValue.Values))
	for i, item := range v.ArrayValue.Values {
		if item.MapValue == nil {
			return nil, apperror.NewMapping(fmt.Sprintf("%s[%d]", name, i), fmt.Sprintf("expected mapValue, got %s", item.Kind()))
		}
		fields := item.MapValue.Fields
		if fields == nil {
			fields = Fields{}
		}
		out = append(out, fields)
	}
	return out, nil
}

// Map returns a nested record field. ok is false when the field is absent.
func (f Fields) Map(name string) (Fields, bool, error) {
	v, present := f[name]
	if !present || v.Kind() == KindNone {
		return nil, false, nil
	}
	if v.MapValue == nil {
		return nil, false, apperror.NewMapping(name, fmt.Sprintf("expected mapValue, got %s", v.Kind()))
	}
	if v.MapValue.Fields == nil {
		return Fields{}, true, nil
	}
	return v.MapValue.Fields, true, nil
}

// Names returns the field names, in no particular order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	return names
}
