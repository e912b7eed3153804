package bperf

import (
	"errors"
	"fmt"
	"math"
)

// NonNaN is a float64 that is never NaN.
type NonNaN struct{ v float64 }

// NewNonNaN returns v as a NonNaN, or ErrNaN.
func NewNonNaN(v float64) (NonNaN, error) {
	if math.IsNaN(v) {
		return NonNaN{}, fmt.Errorf("cannot instantiate NonNaN: %w", ErrNaN)
	}
	return NonNaN{v}, nil
}

// Float64 returns the underlying value.
func (n NonNaN) Float64() float64 { return n.v }

func (n NonNaN) String() string { return fmt.Sprint(n.v) }

// Finite is a float64 that is neither NaN nor ±Inf.
//
// Arithmetic never returns a non-finite value: it fails with ErrOverflow
// instead.
type Finite struct{ v NonNaN }

// NewFinite returns v as a Finite. It fails with ErrNaN or ErrNotFinite.
func NewFinite(v float64) (Finite, error) {
	n, err := NewNonNaN(v)
	if err != nil {
		return Finite{}, fmt.Errorf("cannot instantiate Finite: %w", ErrNaN)
	}
	if math.IsInf(v, 0) {
		return Finite{}, fmt.Errorf("cannot instantiate Finite: %w", ErrNotFinite)
	}
	return Finite{n}, nil
}

// Float64 returns the underlying value.
func (f Finite) Float64() float64 { return f.v.v }

func (f Finite) String() string { return f.v.String() }

func (f Finite) Add(g Finite) (Finite, error) {
	return overflowed("add Finite", f.Float64()+g.Float64(), NewFinite)
}

func (f Finite) Sub(g Finite) (Finite, error) {
	return overflowed("subtract Finite", f.Float64()-g.Float64(), NewFinite)
}

func (f Finite) Mul(g Finite) (Finite, error) {
	return overflowed("multiply Finite", float64(f.Float64()*g.Float64()), NewFinite)
}

func (f Finite) Neg() (Finite, error) {
	return overflowed("negate Finite", -f.Float64(), NewFinite)
}

// overflowed builds the result of an operation from its raw float value.
// When the raw value is not a valid input for build because it is NaN or
// infinite, the operation overflowed, and this is reported as ErrOverflow.
// Any other construction error is returned as is.
func overflowed[T any](op string, v float64, build func(float64) (T, error)) (T, error) {
	res, err := build(v)
	if errors.Is(err, ErrNaN) || errors.Is(err, ErrNotFinite) {
		var zero T
		return zero, fmt.Errorf("cannot %s: %w", op, ErrOverflow)
	}
	return res, err
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
