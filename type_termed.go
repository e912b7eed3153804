package bperf

import (
	"fmt"
	"iter"
	"slices"
)

// Termed attaches a value to a term.
type Termed[V any] struct {
	term  Term
	value V
}

// NewTermed returns the pair (term, value).
func NewTermed[V any](term Term, value V) Termed[V] {
	return Termed[V]{term: term, value: value}
}

func (t Termed[V]) Term() Term { return t.term }
func (t Termed[V]) Value() V   { return t.value }

// Compare orders termed values by term only.
func (t Termed[V]) Compare(u Termed[V]) int { return t.term.Compare(u.term) }

func (t Termed[V]) String() string { return fmt.Sprintf("(%v, %v)", t.term, t.value) }

// TermedSequence is an immutable sequence of termed values sorted by term,
// with unique terms. It may be empty.
type TermedSequence[V any] struct{ Sequence[Termed[V]] }

// NewTermedSequence sorts values by term and fails with ErrInvalidState if two
// of them share the same term.
func NewTermedSequence[V any](values ...Termed[V]) (TermedSequence[V], error) {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, Termed[V].Compare)
	s := TermedSequence[V]{Sequence[Termed[V]]{sorted}}
	if s.Terms().ContainsRepeatedValues() {
		return TermedSequence[V]{}, fmt.Errorf("cannot instantiate TermedSequence: values must contain unique terms: %w", ErrInvalidState)
	}
	return s, nil
}

// Terms returns the terms, in ascending order.
func (s TermedSequence[V]) Terms() TermSequence {
	terms := make([]Term, 0, s.Len())
	for t := range s.Sequence.Values() {
		terms = append(terms, t.term)
	}
	return TermSequence{Sequence[Term]{terms}}
}

// Values returns an iterator over the attached values, in term order.
func (s TermedSequence[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for t := range s.Sequence.Values() {
			if !yield(t.value) {
				return
			}
		}
	}
}
