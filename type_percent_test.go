package bperf

import (
	"errors"
	"math"
	"testing"
)

func TestPercentFromFloat(t *testing.T) {
	tests := []struct {
		v    float64
		bps  int64
		text string
	}{
		{0.12325, 1232, "12.32"},
		{0.12315, 1232, "12.32"},
		{-0.1, -1000, "-10.00"},
		{0.0001, 1, "0.01"},
		{1, 10000, "100.00"},
		{0, 0, "0.00"},
	}
	for _, tt := range tests {
		got, err := PercentFromFloat(tt.v)
		if err != nil {
			t.Errorf("PercentFromFloat(%v) unexpected error: %v", tt.v, err)
			continue
		}
		if got.Bps() != tt.bps {
			t.Errorf("PercentFromFloat(%v) = %d bps, want %d", tt.v, got.Bps(), tt.bps)
		}
		if got.String() != tt.text {
			t.Errorf("PercentFromFloat(%v).String() = %q, want %q", tt.v, got.String(), tt.text)
		}
	}
}

func TestPercentFromFloat_Errors(t *testing.T) {
	if _, err := PercentFromFloat(math.NaN()); !errors.Is(err, ErrNotFinite) {
		t.Errorf("PercentFromFloat(NaN) error = %v, want %v", err, ErrNotFinite)
	}
	if _, err := PercentFromFloat(1e20); !errors.Is(err, ErrRoundingFailure) {
		t.Errorf("PercentFromFloat(1e20) error = %v, want %v", err, ErrRoundingFailure)
	}
}

func TestParsePercent(t *testing.T) {
	for _, bps := range []int64{1232, -1000, 1, 0, 10000} {
		p := NewPercent(bps)
		got, err := ParsePercent(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePercent(%q) = %v, %v, want %v", p.String(), got, err, p)
		}
	}
	if got := must(ParsePercent("0.005")); got.Bps() != 0 {
		t.Errorf("ParsePercent(%q) = %d bps, want 0", "0.005", got.Bps())
	}
	if _, err := ParsePercent("12%"); err == nil {
		t.Errorf("ParsePercent(%q) expected error", "12%")
	}
}

func TestPercent_Float64(t *testing.T) {
	if got := NewPercent(500).Float64(); got != 0.05 {
		t.Errorf("NewPercent(500).Float64() = %v, want 0.05", got)
	}
}

func TestPercentSequence(t *testing.T) {
	s := NewPercentSequence(NewPercent(100), NewPercent(200), NewPercent(-50))
	if sum := must(s.Sum()); sum.Bps() != 250 {
		t.Errorf("Sum() = %d bps, want 250", sum.Bps())
	}
	if !s.SumsTo(NewPercent(250)) {
		t.Errorf("SumsTo(250) = false, want true")
	}
	if s.SumsTo(NewPercent(251)) {
		t.Errorf("SumsTo(251) = true, want false")
	}
	if diff := must(s.DifferenceWith(NewPercent(1000))); diff.Bps() != 750 {
		t.Errorf("DifferenceWith(1000) = %d bps, want 750", diff.Bps())
	}
	if diff := must(NewPercentSequence().DifferenceWith(NewPercent(-3))); diff.Bps() != -3 {
		t.Errorf("empty DifferenceWith(-3) = %d bps, want -3", diff.Bps())
	}
	overflow := NewPercentSequence(NewPercent(math.MaxInt64), NewPercent(1))
	if _, err := overflow.Sum(); !errors.Is(err, ErrOverflow) {
		t.Errorf("Sum() error = %v, want %v", err, ErrOverflow)
	}
}
