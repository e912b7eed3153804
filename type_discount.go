package bperf

import "fmt"

// Discount is a non-negative discount factor.
type Discount struct{ value Finite }

// NewDiscount fails with ErrInvalidState for a negative factor.
func NewDiscount(v float64) (Discount, error) {
	f, err := NewFinite(v)
	if err != nil {
		return Discount{}, fmt.Errorf("cannot instantiate Discount: %w", err)
	}
	if v < 0 {
		return Discount{}, fmt.Errorf("cannot instantiate Discount: value must be positive: %w", ErrInvalidState)
	}
	return Discount{f}, nil
}

func (d Discount) Float64() float64 { return d.value.Float64() }
func (d Discount) String() string   { return d.value.String() }

// DiscountSequence is an immutable sequence of discount factors.
type DiscountSequence struct{ Sequence[Discount] }

func NewDiscountSequence(values ...Discount) DiscountSequence {
	return DiscountSequence{NewSequence(values...)}
}
