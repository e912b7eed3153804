package bperf

import (
	"fmt"
	"math"
)

// ContinuousRate is a continuously compounded rate.
type ContinuousRate struct{ value Finite }

func NewContinuousRate(v float64) (ContinuousRate, error) {
	f, err := NewFinite(v)
	if err != nil {
		return ContinuousRate{}, fmt.Errorf("cannot instantiate ContinuousRate: %w", err)
	}
	return ContinuousRate{f}, nil
}

func (r ContinuousRate) Float64() float64 { return r.value.Float64() }
func (r ContinuousRate) String() string   { return r.value.String() }

func (r ContinuousRate) Add(o ContinuousRate) (ContinuousRate, error) {
	f, err := r.value.Add(o.value)
	if err != nil {
		return ContinuousRate{}, err
	}
	return ContinuousRate{f}, nil
}

// DiscountAt returns the discount factor exp(-r·t).
func (r ContinuousRate) DiscountAt(t Term) (Discount, error) {
	return overflowed("determine discount for ContinuousRate", math.Exp(float64(-r.Float64()*t.Float64())), NewDiscount)
}

// ContinuousRateSequence is an immutable sequence of continuous rates.
type ContinuousRateSequence struct{ Sequence[ContinuousRate] }

func NewContinuousRateSequence(values ...ContinuousRate) ContinuousRateSequence {
	return ContinuousRateSequence{NewSequence(values...)}
}

// ContinuousRatesFromFloats converts every value into a ContinuousRate.
func ContinuousRatesFromFloats(values ...float64) (ContinuousRateSequence, error) {
	rates, err := mapSequence(Sequence[float64]{values}, NewContinuousRate)
	if err != nil {
		return ContinuousRateSequence{}, err
	}
	return ContinuousRateSequence{Sequence[ContinuousRate]{rates}}, nil
}

// Add returns a new sequence with rate added to every value.
func (s ContinuousRateSequence) Add(rate ContinuousRate) (ContinuousRateSequence, error) {
	rates, err := mapSequence(s.Sequence, func(r ContinuousRate) (ContinuousRate, error) { return r.Add(rate) })
	if err != nil {
		return ContinuousRateSequence{}, err
	}
	return ContinuousRateSequence{Sequence[ContinuousRate]{rates}}, nil
}

// Float64s returns the rates, in order.
func (s ContinuousRateSequence) Float64s() []float64 {
	out := make([]float64, 0, s.Len())
	for r := range s.Values() {
		out = append(out, r.Float64())
	}
	return out
}

// PeriodicRate is a simple growth rate over one period: 0.05 is 5% growth.
type PeriodicRate struct{ value Finite }

func NewPeriodicRate(v float64) (PeriodicRate, error) {
	f, err := NewFinite(v)
	if err != nil {
		return PeriodicRate{}, fmt.Errorf("cannot instantiate PeriodicRate: %w", err)
	}
	return PeriodicRate{f}, nil
}

func (r PeriodicRate) Float64() float64 { return r.value.Float64() }
func (r PeriodicRate) String() string   { return r.value.String() }

func (r PeriodicRate) Add(o PeriodicRate) (PeriodicRate, error) { return periodic(r.value.Add(o.value)) }
func (r PeriodicRate) Sub(o PeriodicRate) (PeriodicRate, error) { return periodic(r.value.Sub(o.value)) }
func (r PeriodicRate) Mul(o PeriodicRate) (PeriodicRate, error) { return periodic(r.value.Mul(o.value)) }
func (r PeriodicRate) Neg() (PeriodicRate, error)               { return periodic(r.value.Neg()) }

// Increment converts the rate into its growth multiplier (1 + r).
func (r PeriodicRate) Increment() (PeriodicRate, error) { return r.Add(unitRate) }

// Decrement converts a growth multiplier back into a rate (r - 1).
func (r PeriodicRate) Decrement() (PeriodicRate, error) { return r.Sub(unitRate) }

// Scale multiplies the rate by a finite factor.
func (r PeriodicRate) Scale(by float64) (PeriodicRate, error) {
	if !isFinite(by) {
		return PeriodicRate{}, fmt.Errorf("cannot scale this PeriodicRate: by must be finite: %w", ErrNotFinite)
	}
	return overflowed("scale PeriodicRate", float64(r.Float64()*by), NewPeriodicRate)
}

// unitRate is the growth multiplier of a zero rate.
var unitRate = PeriodicRate{Finite{NonNaN{1.0}}}

func periodic(f Finite, err error) (PeriodicRate, error) {
	if err != nil {
		return PeriodicRate{}, err
	}
	return PeriodicRate{f}, nil
}

// PeriodicRateSequence is an immutable sequence of periodic rates.
type PeriodicRateSequence struct{ Sequence[PeriodicRate] }

func NewPeriodicRateSequence(values ...PeriodicRate) PeriodicRateSequence {
	return PeriodicRateSequence{NewSequence(values...)}
}

// Scale multiplies every rate by its matching factor.
// It fails with ErrLengthMismatch if by and s differ in length.
func (s PeriodicRateSequence) Scale(by []float64) (PeriodicRateSequence, error) {
	if len(by) != s.Len() {
		return PeriodicRateSequence{}, fmt.Errorf("cannot weight this PeriodicRateSequence: %d factors for %d rates: %w", len(by), s.Len(), ErrLengthMismatch)
	}
	rates := make([]PeriodicRate, 0, s.Len())
	for i, r := range s.All() {
		scaled, err := r.Scale(by[i])
		if err != nil {
			return PeriodicRateSequence{}, err
		}
		rates = append(rates, scaled)
	}
	return PeriodicRateSequence{Sequence[PeriodicRate]{rates}}, nil
}

// Sum adds the rates in order, starting from zero.
func (s PeriodicRateSequence) Sum() (PeriodicRate, error) {
	var sum PeriodicRate
	for r := range s.Values() {
		var err error
		if sum, err = sum.Add(r); err != nil {
			return PeriodicRate{}, err
		}
	}
	return sum, nil
}

// Dot returns the sum of the rates scaled by with.
func (s PeriodicRateSequence) Dot(with []float64) (PeriodicRate, error) {
	scaled, err := s.Scale(with)
	if err != nil {
		return PeriodicRate{}, err
	}
	return scaled.Sum()
}

// Compound chains the rates as successive periods: Π(1 + r) - 1.
// The empty sequence compounds to zero.
func (s PeriodicRateSequence) Compound() (PeriodicRate, error) {
	product := unitRate
	for r := range s.Values() {
		growth, err := r.Increment()
		if err != nil {
			return PeriodicRate{}, err
		}
		if product, err = product.Mul(growth); err != nil {
			return PeriodicRate{}, err
		}
	}
	return product.Decrement()
}
