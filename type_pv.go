package bperf

import "fmt"

// PresentValue is the discounted value of some cash flows, in major units.
type PresentValue struct{ value Finite }

func NewPresentValue(v float64) (PresentValue, error) {
	f, err := NewFinite(v)
	if err != nil {
		return PresentValue{}, fmt.Errorf("cannot instantiate PresentValue: %w", err)
	}
	return PresentValue{f}, nil
}

func (pv PresentValue) Float64() float64 { return pv.value.Float64() }
func (pv PresentValue) String() string   { return pv.value.String() }

// IsZero reports whether pv is exactly zero.
func (pv PresentValue) IsZero() bool { return pv.Float64() == 0 }

func (pv PresentValue) Add(o PresentValue) (PresentValue, error) {
	f, err := pv.value.Add(o.value)
	if err != nil {
		return PresentValue{}, err
	}
	return PresentValue{f}, nil
}

// Growth returns the periodic rate growing pv into final, counting payments
// received in between:
//
//	(final + payments) / pv - 1
//
// It fails with ErrNotFinite for non finite payments, ErrZeroDivision when pv
// is zero, and ErrOverflow when the rate is not finite.
func (pv PresentValue) Growth(final PresentValue, payments float64) (PeriodicRate, error) {
	if !isFinite(payments) {
		return PeriodicRate{}, fmt.Errorf("cannot determine growth for PresentValue: payments must be finite: %w", ErrNotFinite)
	}
	if pv.IsZero() {
		return PeriodicRate{}, fmt.Errorf("cannot determine growth for PresentValue: this present value must be different from zero: %w", ErrZeroDivision)
	}
	return overflowed("determine growth for PresentValue", (final.Float64()+payments)/pv.Float64()-1.0, NewPeriodicRate)
}

// PresentValueSequence is an immutable sequence of present values.
type PresentValueSequence struct{ Sequence[PresentValue] }

func NewPresentValueSequence(values ...PresentValue) PresentValueSequence {
	return PresentValueSequence{NewSequence(values...)}
}

// Sum adds the present values in order, starting from zero.
func (s PresentValueSequence) Sum() (PresentValue, error) {
	var sum PresentValue
	for pv := range s.Values() {
		var err error
		if sum, err = sum.Add(pv); err != nil {
			return PresentValue{}, err
		}
	}
	return sum, nil
}
