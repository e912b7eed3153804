package bperf

import (
	"cmp"
	"fmt"
)

// Term is a strictly positive time offset in years.
type Term struct{ value Finite }

// NewTerm returns v years as a Term. It fails with ErrInvalidState when v is
// not strictly positive.
func NewTerm(v float64) (Term, error) {
	f, err := NewFinite(v)
	if err != nil {
		return Term{}, fmt.Errorf("cannot instantiate Term: %w", err)
	}
	if v <= 0 {
		return Term{}, fmt.Errorf("cannot instantiate Term: value must be strictly positive: %w", ErrInvalidState)
	}
	return Term{f}, nil
}

// Float64 returns the term in years.
func (t Term) Float64() float64 { return t.value.Float64() }

func (t Term) String() string { return t.value.String() }

// Compare returns -1, 0 or +1 depending on t being shorter, equal or longer than u.
func (t Term) Compare(u Term) int { return cmp.Compare(t.Float64(), u.Float64()) }

// TermSequence is an immutable sequence of terms.
type TermSequence struct{ Sequence[Term] }

func NewTermSequence(values ...Term) TermSequence {
	return TermSequence{NewSequence(values...)}
}

// ContainsRepeatedValues reports whether any two terms are equal.
func (s TermSequence) ContainsRepeatedValues() bool {
	seen := make(map[Term]struct{}, s.Len())
	for t := range s.Values() {
		if _, ok := seen[t]; ok {
			return true
		}
		seen[t] = struct{}{}
	}
	return false
}

// Float64s returns the terms in years, in order.
func (s TermSequence) Float64s() []float64 {
	out := make([]float64, 0, s.Len())
	for t := range s.Values() {
		out = append(out, t.Float64())
	}
	return out
}
