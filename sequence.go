package bperf

import (
	"iter"
	"slices"
)

// Sequence is an immutable, fixed-length ordered container.
//
// The values are copied in at construction and never handed out for
// mutation, so a Sequence can be shared freely. Its zero value is the empty
// sequence.
type Sequence[T any] struct {
	values []T
}

// NewSequence returns a sequence holding a copy of values.
func NewSequence[T any](values ...T) Sequence[T] {
	return Sequence[T]{values: slices.Clone(values)}
}

// Collect returns a sequence of all the values yielded by seq.
func Collect[T any](seq iter.Seq[T]) Sequence[T] {
	return Sequence[T]{values: slices.Collect(seq)}
}

// Len returns the number of values in the sequence.
func (s Sequence[T]) Len() int { return len(s.values) }

// IsEmpty reports whether the sequence holds no value.
func (s Sequence[T]) IsEmpty() bool { return len(s.values) == 0 }

// At returns the i-th value. It panics if i is out of range, like a slice.
func (s Sequence[T]) At(i int) T { return s.values[i] }

// All returns an iterator over index/value pairs, in order.
func (s Sequence[T]) All() iter.Seq2[int, T] { return slices.All(s.values) }

// Values returns an iterator over the values, in order.
func (s Sequence[T]) Values() iter.Seq[T] { return slices.Values(s.values) }

// Slice returns a copy of the values.
func (s Sequence[T]) Slice() []T { return slices.Clone(s.values) }

// Sub returns a new sequence holding the values in [i, j).
func (s Sequence[T]) Sub(i, j int) Sequence[T] {
	return Sequence[T]{values: slices.Clone(s.values[i:j])}
}

// EqualFunc reports whether both sequences hold the same values in the same order.
func (s Sequence[T]) EqualFunc(o Sequence[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(s.values, o.values, eq)
}

// mapSequence applies f to every value of s, stopping at the first error.
func mapSequence[T, U any](s Sequence[T], f func(T) (U, error)) ([]U, error) {
	out := make([]U, 0, s.Len())
	for _, v := range s.values {
		u, err := f(v)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}
