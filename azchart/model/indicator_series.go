package model

import (
	"encoding/json"
	"math"
)

// Value is one slot of an IndicatorSeries. Valid is false when the
// indicator has no value at that index (insufficient history, or an
// undefined ratio such as 0/0 in RSI).
type Value struct {
	Float float64
	Valid bool
}

// NewValue returns a defined slot.
func NewValue(f float64) Value {
	return Value{Float: f, Valid: true}
}

// Undefined returns an undefined slot.
func Undefined() Value {
	return Value{}
}

// MarshalJSON encodes undefined slots as null, so a renderer can never
// mistake them for real data points.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	v.Valid = true
	return json.Unmarshal(data, &v.Float)
}

// IndicatorSeries is a derived series aligned index-for-index with the
// dataframe it was computed from. Slots without enough history hold an
// explicit undefined marker instead of a number.
type IndicatorSeries []Value

// Len returns the number of slots, defined or not.
func (s IndicatorSeries) Len() int {
	return len(s)
}

// At returns the value at index i and whether it is defined.
func (s IndicatorSeries) At(i int) (float64, bool) {
	return s[i].Float, s[i].Valid
}

// Defined reports whether the slot at index i holds a value.
func (s IndicatorSeries) Defined(i int) bool {
	return s[i].Valid
}

// DefinedCount returns how many slots hold a value.
func (s IndicatorSeries) DefinedCount() int {
	count := 0
	for _, v := range s {
		if v.Valid {
			count++
		}
	}
	return count
}

// Floats flattens the series to a plain slice, filling undefined slots
// with NaN. Intended for renderers that use NaN as a gap marker; every
// other consumer should go through At or Defined.
func (s IndicatorSeries) Floats() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		if v.Valid {
			out[i] = v.Float
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
