package bperf

import (
	"errors"
	"math"
	"testing"
)

func TestNewCurve(t *testing.T) {
	if _, err := NewCurve(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("NewCurve() error = %v, want %v", err, ErrInvalidState)
	}
	_, err := NewCurve(NewTermed(Tm(1), CR(0.01)), NewTermed(Tm(1), CR(0.02)))
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("NewCurve() error = %v, want %v", err, ErrInvalidState)
	}
}

func TestCurve_RatesAt_ZeroCurve(t *testing.T) {
	if _, err := (Curve{}).RatesAt(NewTermSequence(Tm(1))); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Curve{}.RatesAt() error = %v, want %v", err, ErrInvalidState)
	}
	if _, err := (SpotCurve{}).DiscountsAt(NewTermSequence(Tm(1))); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SpotCurve{}.DiscountsAt() error = %v, want %v", err, ErrInvalidState)
	}
}

func TestCurve_RatesAt(t *testing.T) {
	curve := Spot(knot{1, 0.01}, knot{2, 0.03}, knot{4, 0.02})
	tests := []struct {
		name string
		term float64
		want float64
	}{
		{"before first knot", 0.5, 0.01},
		{"on first knot", 1, 0.01},
		{"between knots", 1.5, 0.02},
		{"on inner knot", 2, 0.03},
		{"decreasing segment", 3, 0.025},
		{"on last knot", 4, 0.02},
		{"after last knot", 10, 0.02},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates, err := curve.RatesAt(NewTermSequence(Tm(tt.term)))
			if err != nil {
				t.Fatalf("RatesAt() unexpected error: %v", err)
			}
			if got := rates.At(0).Float64(); !near(got, tt.want) {
				t.Errorf("RatesAt(%v) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestCurve_RatesAt_UnorderedTargets(t *testing.T) {
	curve := Spot(knot{1, 0.01}, knot{3, 0.03})
	rates, err := curve.RatesAt(NewTermSequence(Tm(2), Tm(0.5), Tm(2), Tm(5)))
	if err != nil {
		t.Fatalf("RatesAt() unexpected error: %v", err)
	}
	want := []float64{0.02, 0.01, 0.02, 0.03}
	for i, r := range rates.Float64s() {
		if !near(r, want[i]) {
			t.Errorf("RatesAt()[%d] = %v, want %v", i, r, want[i])
		}
	}
}

func TestCurve_RatesAt_SingleKnot(t *testing.T) {
	curve := Spot(knot{2, 0.05})
	rates := must(curve.RatesAt(NewTermSequence(Tm(1), Tm(2), Tm(3))))
	for i, r := range rates.Float64s() {
		if r != 0.05 {
			t.Errorf("RatesAt()[%d] = %v, want 0.05", i, r)
		}
	}
}

func TestSpotCurve_DiscountsAt(t *testing.T) {
	curve := Spot(knot{1, 0.01}, knot{3, 0.03})
	terms := NewTermSequence(Tm(1), Tm(2), Tm(4))
	discounts, err := curve.DiscountsAt(terms)
	if err != nil {
		t.Fatalf("DiscountsAt() unexpected error: %v", err)
	}
	rates := must(curve.RatesAt(terms))
	for i, term := range terms.All() {
		want := must(rates.At(i).DiscountAt(term)).Float64()
		if got := discounts.At(i).Float64(); got != want {
			t.Errorf("DiscountsAt()[%d] = %v, want %v", i, got, want)
		}
	}
	if got, want := discounts.At(1).Float64(), math.Exp(-0.04); !near(got, want) {
		t.Errorf("DiscountsAt()[1] = %v, want %v", got, want)
	}
}

func TestSpotCurve_DiscountsAt_Overflow(t *testing.T) {
	curve := Spot(knot{1, -1000})
	if _, err := curve.DiscountsAt(NewTermSequence(Tm(1))); !errors.Is(err, ErrOverflow) {
		t.Errorf("DiscountsAt() error = %v, want %v", err, ErrOverflow)
	}
}

func TestSpotCurve_Add(t *testing.T) {
	curve := Spot(knot{1, 0.01}, knot{2, 0.02})

	same := must(curve.Add(CR(0)))
	if !same.Equal(curve.Curve) {
		t.Errorf("Add(0) = %v, want %v", same.Rates().Float64s(), curve.Rates().Float64s())
	}

	shifted := must(curve.Add(CR(0.01)))
	want := []float64{0.02, 0.03}
	for i, r := range shifted.Rates().Float64s() {
		if !near(r, want[i]) {
			t.Errorf("Add(0.01)[%d] = %v, want %v", i, r, want[i])
		}
	}
	if got := curve.Rates().Float64s(); got[0] != 0.01 || got[1] != 0.02 {
		t.Errorf("Add() modified the curve: %v", got)
	}

	huge := Spot(knot{1, math.MaxFloat64})
	if _, err := huge.Add(CR(math.MaxFloat64)); !errors.Is(err, ErrOverflow) {
		t.Errorf("Add() error = %v, want %v", err, ErrOverflow)
	}
}
