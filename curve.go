package bperf

import (
	"fmt"
	"sort"
)

// Curve is a non-empty, term sorted sequence of continuously compounded rates.
type Curve struct {
	points TermedSequence[ContinuousRate]
}

// NewCurve fails with ErrInvalidState if points is empty or holds duplicate terms.
func NewCurve(points ...Termed[ContinuousRate]) (Curve, error) {
	s, err := NewTermedSequence(points...)
	if err != nil {
		return Curve{}, fmt.Errorf("cannot instantiate Curve: %w", err)
	}
	if s.IsEmpty() {
		return Curve{}, fmt.Errorf("cannot instantiate Curve: values must be non-empty: %w", ErrInvalidState)
	}
	return Curve{s}, nil
}

// Points returns the knots of the curve.
func (c Curve) Points() TermedSequence[ContinuousRate] { return c.points }

// Terms returns the knot terms.
func (c Curve) Terms() TermSequence { return c.points.Terms() }

// Rates returns the knot rates.
func (c Curve) Rates() ContinuousRateSequence {
	return ContinuousRateSequence{Collect(c.points.Values())}
}

// Equal reports whether both curves have the same knots.
func (c Curve) Equal(o Curve) bool {
	return c.points.EqualFunc(o.points.Sequence, func(a, b Termed[ContinuousRate]) bool { return a == b })
}

// RatesAt linearly interpolates the rate at every term. Terms before the first
// knot get the first rate, terms after the last knot get the last one. Terms
// need not be sorted nor unique. It fails with ErrInvalidState on the zero
// Curve.
func (c Curve) RatesAt(terms TermSequence) (ContinuousRateSequence, error) {
	if c.points.IsEmpty() {
		return ContinuousRateSequence{}, fmt.Errorf("cannot interpolate Curve: values must be non-empty: %w", ErrInvalidState)
	}
	xp, fp := c.Terms().Float64s(), c.Rates().Float64s()
	rates := make([]float64, 0, terms.Len())
	for t := range terms.Values() {
		rates = append(rates, interpolate(xp, fp, t.Float64()))
	}
	seq, err := ContinuousRatesFromFloats(rates...)
	if err != nil {
		return ContinuousRateSequence{}, fmt.Errorf("cannot interpolate Curve: %w", ErrOverflow)
	}
	return seq, nil
}

// interpolate evaluates the piecewise linear function through (xp, fp) at x.
// xp is sorted, non-empty and unique.
func interpolate(xp, fp []float64, x float64) float64 {
	n := len(xp)
	// j is the last knot at or before x.
	j := sort.Search(n, func(i int) bool { return xp[i] > x }) - 1
	switch {
	case j < 0:
		return fp[0]
	case j >= n-1:
		return fp[n-1]
	case xp[j] == x:
		return fp[j]
	}
	slope := (fp[j+1] - fp[j]) / (xp[j+1] - xp[j])
	return float64(slope*(x-xp[j])) + fp[j]
}

// SpotCurve is a curve of spot rates used for discounting.
type SpotCurve struct{ Curve }

// NewSpotCurve has the same invariants as NewCurve.
func NewSpotCurve(points ...Termed[ContinuousRate]) (SpotCurve, error) {
	c, err := NewCurve(points...)
	if err != nil {
		return SpotCurve{}, err
	}
	return SpotCurve{c}, nil
}

// DiscountsAt returns the discount factor at every term, from the
// interpolated rate at that term.
func (c SpotCurve) DiscountsAt(terms TermSequence) (DiscountSequence, error) {
	rates, err := c.RatesAt(terms)
	if err != nil {
		return DiscountSequence{}, err
	}
	discounts := make([]Discount, 0, terms.Len())
	for i, t := range terms.All() {
		d, err := rates.At(i).DiscountAt(t)
		if err != nil {
			return DiscountSequence{}, err
		}
		discounts = append(discounts, d)
	}
	return DiscountSequence{Sequence[Discount]{discounts}}, nil
}

// Add returns a new curve with spread added to every rate.
func (c SpotCurve) Add(spread ContinuousRate) (SpotCurve, error) {
	rates, err := c.Rates().Add(spread)
	if err != nil {
		return SpotCurve{}, fmt.Errorf("cannot add spread to SpotCurve: %w", err)
	}
	points := make([]Termed[ContinuousRate], 0, c.points.Len())
	for i, t := range c.Terms().All() {
		points = append(points, NewTermed(t, rates.At(i)))
	}
	return SpotCurve{Curve{TermedSequence[ContinuousRate]{Sequence[Termed[ContinuousRate]]{points}}}}, nil
}
