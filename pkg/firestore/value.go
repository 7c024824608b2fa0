package firestore

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Kind identifies which tag of a Value is populated.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindInteger
	KindDouble
	KindBoolean
	KindTimestamp
	KindArray
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "stringValue"
	case KindInteger:
		return "integerValue"
	case KindDouble:
		return "doubleValue"
	case KindBoolean:
		return "booleanValue"
	case KindTimestamp:
		return "timestampValue"
	case KindArray:
		return "arrayValue"
	case KindMap:
		return "mapValue"
	default:
		return "none"
	}
}

// Value is a Firestore REST typed value. Exactly one tag is set on a well-formed value.
// Tags this package does not know (bytesValue, geoPointValue, ...) are dropped on read.
type Value struct {
	StringValue    *string        `json:"stringValue,omitempty"`
	IntegerValue   *IntegerString `json:"integerValue,omitempty"`
	DoubleValue    *float64       `json:"doubleValue,omitempty"`
	BooleanValue   *bool          `json:"booleanValue,omitempty"`
	TimestampValue *string        `json:"timestampValue,omitempty"`
	ArrayValue     *ArrayValue    `json:"arrayValue,omitempty"`
	MapValue       *MapValue      `json:"mapValue,omitempty"`
}

// ArrayValue holds an ordered list of values.
type ArrayValue struct {
	Values []Value `json:"values,omitempty"`
}

// MapValue holds a nested record.
type MapValue struct {
	Fields Fields `json:"fields,omitempty"`
}

// IntegerString is an int64 that travels as a JSON string, as the REST API emits it.
// Both "42" and 42 are accepted on read.
type IntegerString int64

// MarshalJSON implements json.Marshaler.
func (i IntegerString) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(i), 10))
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *IntegerString) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("integerValue: %w", err)
	}
	if v, err := n.Int64(); err == nil {
		*i = IntegerString(v)
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("integerValue: %w", err)
	}
	*i = IntegerString(int64(f))
	return nil
}

// Kind reports the populated tag.
func (v Value) Kind() Kind {
	switch {
	case v.StringValue != nil:
		return KindString
	case v.IntegerValue != nil:
		return KindInteger
	case v.DoubleValue != nil:
		return KindDouble
	case v.BooleanValue != nil:
		return KindBoolean
	case v.TimestampValue != nil:
		return KindTimestamp
	case v.ArrayValue != nil:
		return KindArray
	case v.MapValue != nil:
		return KindMap
	default:
		return KindNone
	}
}

// String wraps s in a string tag.
func String(s string) Value {
	return Value{StringValue: &s}
}

// Double wraps f in a double tag.
func Double(f float64) Value {
	return Value{DoubleValue: &f}
}

// Integer wraps i in an integer tag.
func Integer(i int64) Value {
	n := IntegerString(i)
	return Value{IntegerValue: &n}
}

// Bool wraps b in a boolean tag.
func Bool(b bool) Value {
	return Value{BooleanValue: &b}
}

// Timestamp wraps t as an RFC 3339 timestamp tag in UTC.
func Timestamp(t time.Time) Value {
	s := t.UTC().Format(time.RFC3339Nano)
	return Value{TimestampValue: &s}
}

// Array wraps values in an array tag. A nil slice still yields an (empty) array.
func Array(values ...Value) Value {
	return Value{ArrayValue: &ArrayValue{Values: values}}
}

// StringArray wraps each string in a string tag inside an array tag.
func StringArray(items []string) Value {
	values := make([]Value, 0, len(items))
	for _, s := range items {
		values = append(values, String(s))
	}
	return Array(values...)
}

// Map wraps fields in a map tag.
func Map(fields Fields) Value {
	if fields == nil {
		fields = Fields{}
	}
	return Value{MapValue: &MapValue{Fields: fields}}
}

// AsString returns the string tag.
func (v Value) AsString() (string, bool) {
	if v.StringValue == nil {
		return "", false
	}
	return *v.StringValue, true
}

// AsFloat returns the numeric value under either numeric tag.
func (v Value) AsFloat() (float64, bool) {
	switch {
	case v.DoubleValue != nil:
		return *v.DoubleValue, true
	case v.IntegerValue != nil:
		return float64(*v.IntegerValue), true
	default:
		return 0, false
	}
}

// AsBool returns the boolean tag.
func (v Value) AsBool() (bool, bool) {
	if v.BooleanValue == nil {
		return false, false
	}
	return *v.BooleanValue, true
}

// AsTime parses a timestamp tag, or a string tag holding an RFC 3339 timestamp.
func (v Value) AsTime() (time.Time, bool, error) {
	var raw string
	switch {
	case v.TimestampValue != nil:
		raw = *v.TimestampValue
	case v.StringValue != nil:
		raw = *v.StringValue
	default:
		return time.Time{}, false, nil
	}
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), true, nil
}

// Encode converts a native value to its tagged form. ok is false when v is nil
// or a nil pointer: the caller should leave the field out entirely.
func Encode(v interface{}) (Value, bool, error) {
	if v == nil {
		return Value{}, false, nil
	}

	switch t := v.(type) {
	case Value:
		return t, true, nil
	case Fields:
		return Map(t), true, nil
	case string:
		return String(t), true, nil
	case bool:
		return Bool(t), true, nil
	case float64:
		return Double(t), true, nil
	case float32:
		return Double(float64(t)), true, nil
	case time.Time:
		return Timestamp(t), true, nil
	case []string:
		return StringArray(t), true, nil
	case []interface{}:
		return encodeSlice(t)
	case []map[string]interface{}:
		values := make([]Value, 0, len(t))
		for i, m := range t {
			fields, err := EncodeFields(m)
			if err != nil {
				return Value{}, false, fmt.Errorf("[%d]: %w", i, err)
			}
			values = append(values, Map(fields))
		}
		return Array(values...), true, nil
	case map[string]interface{}:
		fields, err := EncodeFields(t)
		if err != nil {
			return Value{}, false, err
		}
		return Map(fields), true, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return Value{}, false, nil
		}
		return Encode(rv.Elem().Interface())
	case reflect.String:
		return String(rv.String()), true, nil
	case reflect.Bool:
		return Bool(rv.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Integer(rv.Int()), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer(int64(rv.Uint())), true, nil
	case reflect.Float32, reflect.Float64:
		return Double(rv.Float()), true, nil
	case reflect.Slice:
		if rv.IsNil() {
			return Value{}, false, nil
		}
		items := make([]interface{}, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return encodeSlice(items)
	}

	return Value{}, false, fmt.Errorf("firestore: unsupported value type %T", v)
}

func encodeSlice(items []interface{}) (Value, bool, error) {
	values := make([]Value, 0, len(items))
	for i, item := range items {
		ev, ok, err := Encode(item)
		if err != nil {
			return Value{}, false, fmt.Errorf("[%d]: %w", i, err)
		}
		if !ok {
			return Value{}, false, fmt.Errorf("firestore: nil array element at [%d]", i)
		}
		values = append(values, ev)
	}
	return Array(values...), true, nil
}

// EncodeFields encodes every entry of m, dropping nil entries.
func EncodeFields(m map[string]interface{}) (Fields, error) {
	fields := make(Fields, len(m))
	for name, raw := range m {
		v, ok, err := Encode(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if ok {
			fields[name] = v
		}
	}
	return fields, nil
}

// Decode converts a tagged value to its native form: string, float64 (for both
// numeric tags), bool, string (timestamps stay ISO-8601), []interface{} or
// map[string]interface{}. An untagged value decodes to nil.
func Decode(v Value) (interface{}, error) {
	switch v.Kind() {
	case KindString:
		return *v.StringValue, nil
	case KindInteger, KindDouble:
		f, _ := v.AsFloat()
		return f, nil
	case KindBoolean:
		return *v.BooleanValue, nil
	case KindTimestamp:
		return *v.TimestampValue, nil
	case KindArray:
		out := make([]interface{}, 0, len(v.ArrayValue.Values))
		for i, item := range v.ArrayValue.Values {
			native, err := Decode(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if native == nil {
				continue
			}
			out = append(out, native)
		}
		return out, nil
	case KindMap:
		out := make(map[string]interface{}, len(v.MapValue.Fields))
		for name, item := range v.MapValue.Fields {
			native, err := Decode(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if native != nil {
				out[name] = native
			}
		}
		return out, nil
	default:
		return nil, nil
	}
}
