package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DatumKind tags the shape of a [Datum].
type DatumKind uint8

// Datum kinds. The zero value is a null gap.
const (
	DatumNull DatumKind = iota
	DatumNumber
	DatumPoint
	DatumTuple
)

// Datum is a single data entry.
type Datum struct {
	Kind  DatumKind
	Value float64   // DatumNumber
	X, Y  float64   // DatumPoint
	Tuple []float64 // DatumTuple
}

// Num returns a numeric datum.
func Num(v float64) Datum { return Datum{Kind: DatumNumber, Value: v} }

// Pt returns an {x, y} point datum.
func Pt(x, y float64) Datum { return Datum{Kind: DatumPoint, X: x, Y: y} }

// Tup returns a positional tuple datum.
func Tup(vs ...float64) Datum {
	return Datum{Kind: DatumTuple, Tuple: append([]float64(nil), vs...)}
}

// Null returns a gap.
func Null() Datum { return Datum{} }

// Number collapses the datum to one number: the value of a number, the y of
// a point, the last element of a tuple, and 0 for a gap.
func (d Datum) Number() float64 {
	switch d.Kind {
	case DatumNumber:
		return d.Value
	case DatumPoint:
		return d.Y
	case DatumTuple:
		if len(d.Tuple) > 0 {
			return d.Tuple[len(d.Tuple)-1]
		}
	}
	return 0
}

// MarshalJSON encodes the datum in its natural JSON shape.
func (d Datum) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DatumNumber:
		return json.Marshal(d.Value)
	case DatumPoint:
		return json.Marshal(struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		}{d.X, d.Y})
	case DatumTuple:
		return json.Marshal(d.Tuple)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts null, a number, a numeric array or an {x, y} object.
func (d *Datum) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = Null()
		return nil
	}
	switch b[0] {
	case '[':
		var tuple []float64
		if err := json.Unmarshal(b, &tuple); err != nil {
			return fmt.Errorf("datum tuple: %w", err)
		}
		*d = Datum{Kind: DatumTuple, Tuple: tuple}
	case '{':
		var p struct {
			X *float64 `json:"x"`
			Y *float64 `json:"y"`
		}
		if err := json.Unmarshal(b, &p); err != nil {
			return fmt.Errorf("datum point: %w", err)
		}
		if p.X == nil || p.Y == nil {
			return fmt.Errorf("datum point: both x and y are required")
		}
		*d = Pt(*p.X, *p.Y)
	default:
		var v float64
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("datum number: %w", err)
		}
		*d = Num(v)
	}
	return nil
}

// Data is the ordered list of entries of a series.
type Data []Datum

// Values builds numeric data.
func Values(vs ...float64) Data {
	d := make(Data, len(vs))
	for i, v := range vs {
		d[i] = Num(v)
	}
	return d
}

// Points builds point data from alternating x, y coordinates.
// A trailing odd coordinate is ignored.
func Points(xy ...float64) Data {
	d := make(Data, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		d = append(d, Pt(xy[i], xy[i+1]))
	}
	return d
}

// Scalar builds the single-value data used for pie and donut slices.
func Scalar(v float64) Data { return Data{Num(v)} }

// Sum returns the sum of every entry's [Datum.Number].
func (d Data) Sum() float64 {
	var s float64
	for _, e := range d {
		s += e.Number()
	}
	return s
}

// UnmarshalJSON accepts an array of entries or a single scalar entry.
func (d *Data) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = nil
		return nil
	}
	if b[0] != '[' {
		var one Datum
		if err := one.UnmarshalJSON(b); err != nil {
			return err
		}
		*d = Data{one}
		return nil
	}
	var entries []Datum
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}
	*d = entries
	return nil
}
