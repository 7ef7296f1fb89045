package events

import (
	"encoding/json"
	"math"
	"reflect"
)

// ValueKind tags the shape of a [Value].
type ValueKind uint8

// Value shapes.
const (
	ValueNumber ValueKind = iota
	ValuePair
	ValueTriple
)

// Value is the normalized data value of an event: a number, an [x, y] pair
// or an [x, y, v] triple.
type Value struct {
	Kind   ValueKind
	Number float64
	Tuple  []float64
}

// Float returns the scalar value: the number itself or the last tuple
// element.
func (v Value) Float() float64 {
	if v.Kind == ValueNumber || len(v.Tuple) == 0 {
		return v.Number
	}
	return v.Tuple[len(v.Tuple)-1]
}

// MarshalJSON encodes numbers as numbers and tuples as arrays.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == ValueNumber {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Tuple)
}

// NormalizeValue projects a native value into a [Value]. Bare numbers pass
// through, two- and three-element arrays become pairs and triples, objects
// are unwrapped through their "value" field, and anything else is 0.
func NormalizeValue(raw any) Value {
	if m, ok := object(raw); ok {
		inner, ok := m["value"]
		if !ok {
			return Value{}
		}
		return NormalizeValue(inner)
	}
	if items, ok := list(raw); ok {
		return tupleValue(items)
	}
	if f, ok := number(raw); ok {
		return Value{Kind: ValueNumber, Number: f}
	}
	return Value{}
}

func tupleValue(items []any) Value {
	var kind ValueKind
	switch len(items) {
	case 2:
		kind = ValuePair
	case 3:
		kind = ValueTriple
	default:
		return Value{}
	}
	tuple := make([]float64, len(items))
	for i, it := range items {
		tuple[i], _ = number(it)
	}
	return Value{Kind: kind, Tuple: tuple}
}

// number coerces any Go numeric value, or a json.Number.
func number(v any) (float64, bool) {
	var f float64
	if n, ok := v.(json.Number); ok {
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	} else {
		rv := reflect.ValueOf(v)
		switch {
		case rv.CanFloat():
			f = rv.Float()
		case rv.CanInt():
			f = float64(rv.Int())
		case rv.CanUint():
			f = float64(rv.Uint())
		default:
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// list views any slice or array as []any. Decoded JSON yields []any; Go
// hosts emitting through [LocalInstance] may pass typed slices.
func list(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// object views any map keyed by strings as map[string]any.
func object(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}
