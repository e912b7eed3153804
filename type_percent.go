package bperf

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const percentPrecision = 4

// Percent is a percentage with a precision of four decimal places.
//
// The magnitude is in basis points: NewPercent(1) is 0.01%, and its float
// value is 0.0001. NewPercent(10000) is 100%.
type Percent struct{ Precise }

// NewPercent returns the percent worth bps basis points.
func NewPercent(bps int64) Percent {
	return Percent{Precise{value: bps, precision: percentPrecision}}
}

// PercentFromFloat returns the percent nearest to the rate v (0.05 is 5%),
// rounded half to even.
func PercentFromFloat(v float64) (Percent, error) {
	bps, err := FloatToInt(v, percentPrecision)
	if err != nil {
		return Percent{}, fmt.Errorf("cannot instantiate Percent: %w", err)
	}
	return NewPercent(bps), nil
}

// ParsePercent parses a percentage in its textual form ("12.32" is 12.32%).
func ParsePercent(s string) (Percent, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, fmt.Errorf("invalid percent %q: %w", s, err)
	}
	bps, err := decimalToInt(d, percentPrecision-2)
	if err != nil {
		return Percent{}, fmt.Errorf("invalid percent %q: %w", s, err)
	}
	return NewPercent(bps), nil
}

// Bps returns the magnitude of p.
func (p Percent) Bps() int64 { return p.value }

// String returns the canonical fixed-decimal text of p in percentage units:
// 1232 basis points is "12.32".
func (p Percent) String() string {
	return decimal.New(p.value, -(percentPrecision - 2)).StringFixed(percentPrecision - 2)
}

func (p Percent) Add(q Percent) (Percent, error) {
	v, ok := addInt64(p.value, q.value)
	if !ok {
		return Percent{}, fmt.Errorf("cannot add Percent: %w", ErrOverflow)
	}
	return NewPercent(v), nil
}

func (p Percent) Sub(q Percent) (Percent, error) {
	v, ok := subInt64(p.value, q.value)
	if !ok {
		return Percent{}, fmt.Errorf("cannot subtract Percent: %w", ErrOverflow)
	}
	return NewPercent(v), nil
}

// PercentSequence is an immutable sequence of percents.
type PercentSequence struct{ Sequence[Percent] }

func NewPercentSequence(values ...Percent) PercentSequence {
	return PercentSequence{NewSequence(values...)}
}

// Sum adds the percents in order, starting from zero.
func (s PercentSequence) Sum() (Percent, error) {
	sum := NewPercent(0)
	for p := range s.Values() {
		var err error
		if sum, err = sum.Add(p); err != nil {
			return Percent{}, err
		}
	}
	return sum, nil
}

// SumsTo reports whether the percents sum exactly to p.
func (s PercentSequence) SumsTo(p Percent) bool {
	sum, err := s.Sum()
	return err == nil && sum.Equal(p.Precise)
}

// DifferenceWith returns p minus the sum of the percents.
func (s PercentSequence) DifferenceWith(p Percent) (Percent, error) {
	sum, err := s.Sum()
	if err != nil {
		return Percent{}, err
	}
	return p.Sub(sum)
}

// Float64s returns the float value of every percent, in order.
func (s PercentSequence) Float64s() []float64 {
	out := make([]float64, 0, s.Len())
	for p := range s.Values() {
		out = append(out, p.Float64())
	}
	return out
}
