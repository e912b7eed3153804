package bperf

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestNewTerm(t *testing.T) {
	tests := []struct {
		v    float64
		want error
	}{
		{0.25, nil},
		{30, nil},
		{0, ErrInvalidState},
		{-1, ErrInvalidState},
		{math.NaN(), ErrNaN},
		{math.Inf(1), ErrNotFinite},
	}
	for _, tt := range tests {
		if _, err := NewTerm(tt.v); !errors.Is(err, tt.want) {
			t.Errorf("NewTerm(%v) error = %v, want %v", tt.v, err, tt.want)
		}
	}
}

func TestNewTermedSequence(t *testing.T) {
	s, err := NewTermedSequence(
		NewTermed(Tm(3), "c"),
		NewTermed(Tm(1), "a"),
		NewTermed(Tm(2), "b"),
	)
	if err != nil {
		t.Fatalf("NewTermedSequence() unexpected error: %v", err)
	}
	if got, want := s.Terms().Float64s(), []float64{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("Terms() = %v, want %v", got, want)
	}
	if got, want := slices.Collect(s.Values()), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestNewTermedSequence_Duplicates(t *testing.T) {
	_, err := NewTermedSequence(NewTermed(Tm(1), 1), NewTermed(Tm(2), 2), NewTermed(Tm(1), 3))
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("NewTermedSequence() error = %v, want %v", err, ErrInvalidState)
	}
}

func TestNewTermedSequence_Empty(t *testing.T) {
	s, err := NewTermedSequence[int]()
	if err != nil || !s.IsEmpty() {
		t.Errorf("NewTermedSequence() = %v, %v, want empty", s, err)
	}
}

func TestTermSequence_ContainsRepeatedValues(t *testing.T) {
	if NewTermSequence(Tm(1), Tm(2)).ContainsRepeatedValues() {
		t.Errorf("ContainsRepeatedValues() = true, want false")
	}
	if !NewTermSequence(Tm(2), Tm(1), Tm(2)).ContainsRepeatedValues() {
		t.Errorf("ContainsRepeatedValues() = false, want true")
	}
}

func TestSequence_Immutable(t *testing.T) {
	values := []int{1, 2, 3}
	s := NewSequence(values...)
	values[0] = 42
	out := s.Slice()
	out[1] = 42
	if got := s.Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Slice() = %v, want [1 2 3]", got)
	}
	if got := s.Sub(1, 3).Slice(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Sub(1, 3) = %v, want [2 3]", got)
	}
}
