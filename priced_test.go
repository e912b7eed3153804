package bperf

import (
	"errors"
	"math"
	"testing"
)

func TestPricedFlows_Price(t *testing.T) {
	tests := []struct {
		name   string
		priced PricedFlows
		want   float64
	}{
		{"p0 initial", p0.Initial(), 0.0515682303584559},
		{"p0 final", p0.Final(), 0.05099130314932085},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.priced.Price()
			if err != nil {
				t.Fatalf("Price() unexpected error: %v", err)
			}
			if !near(got.Float64(), tt.want) {
				t.Errorf("Price() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPricedFlows_Update(t *testing.T) {
	initial, final := p0.Initial(), p0.Final()

	flows := initial.UpdateFlows(final.Flows())
	if !flows.Flows().Equal(final.Flows()) || !flows.Spot().Equal(initial.Spot().Curve) || flows.Spread() != initial.Spread() {
		t.Errorf("UpdateFlows() changed more than the flows")
	}
	spot := initial.UpdateSpot(final.Spot())
	if !spot.Flows().Equal(initial.Flows()) || !spot.Spot().Equal(final.Spot().Curve) || spot.Spread() != initial.Spread() {
		t.Errorf("UpdateSpot() changed more than the spot curve")
	}
	spread := initial.UpdateSpread(final.Spread())
	if !spread.Flows().Equal(initial.Flows()) || !spread.Spot().Equal(initial.Spot().Curve) || spread.Spread() != final.Spread() {
		t.Errorf("UpdateSpread() changed more than the spread")
	}
	if !initial.Equal(p0.Initial()) {
		t.Errorf("Update*() modified the original")
	}
}

func TestNewPricedPoints_ZeroPrice(t *testing.T) {
	// flows that cancel out on a flat zero curve
	zero := NewPricedFlows(Fl(flow{1, 100}, flow{2, -100}), Spot(knot{1, 0}), CR(0))
	if _, err := NewPricedPoints(zero, p0.Final()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("NewPricedPoints() error = %v, want %v", err, ErrInvalidState)
	}
	// a zero final price is fine
	if _, err := NewPricedPoints(p0.Initial(), zero); err != nil {
		t.Errorf("NewPricedPoints() unexpected error: %v", err)
	}
}

func TestNewPricedPoints_ZeroCurve(t *testing.T) {
	initial := NewPricedFlows(Fl(flow{1, 100}), SpotCurve{}, CR(0))
	if _, err := NewPricedPoints(initial, p0.Final()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("NewPricedPoints() error = %v, want %v", err, ErrInvalidState)
	}
}

func TestPricedPoints_Payments(t *testing.T) {
	initial := NewPricedFlows(Fl(flow{0.5, 250}, flow{1.5, 10250}), Spot(knot{1, 0.02}), CR(0.01))
	final := initial.UpdateFlows(Fl(flow{1, 10250}))
	points := must(NewPricedPoints(initial, final))
	got, err := points.Payments()
	if err != nil {
		t.Fatalf("Payments() unexpected error: %v", err)
	}
	if got.Cents() != 250 {
		t.Errorf("Payments() = %v, want 2.50", got)
	}
	if got := must(p0.Payments()); got.Cents() != 0 {
		t.Errorf("Payments() = %v, want 0", got)
	}
}

func TestNewWeightedPricedPointsSequence(t *testing.T) {
	tests := []struct {
		name    string
		weights []int64
		wantErr bool
	}{
		{"empty", nil, false},
		{"full", []int64{10000}, false},
		{"split", []int64{2500, 7500}, false},
		{"negative and zero weights", []int64{500, 10000, 0, -500}, false},
		{"under", []int64{9999}, true},
		{"over", []int64{5000, 5001}, true},
		{"zero", []int64{0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]WeightedPricedPoints, 0, len(tt.weights))
			for _, w := range tt.weights {
				values = append(values, W(w, p0))
			}
			s, err := NewWeightedPricedPointsSequence(values...)
			if tt.wantErr {
				if !errors.Is(err, ErrWeightSumMismatch) || !errors.Is(err, ErrInvalidState) {
					t.Errorf("NewWeightedPricedPointsSequence() error = %v, want %v", err, ErrWeightSumMismatch)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewWeightedPricedPointsSequence() unexpected error: %v", err)
			}
			if s.Len() != len(tt.weights) || s.Points().Len() != len(tt.weights) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(tt.weights))
			}
		})
	}
}

func TestNewWeightedPricedPointsSequence_Overflow(t *testing.T) {
	_, err := NewWeightedPricedPointsSequence(W(math.MaxInt64, p0), W(math.MaxInt64, p0))
	if !errors.Is(err, ErrWeightSumMismatch) || !errors.Is(err, ErrOverflow) {
		t.Errorf("NewWeightedPricedPointsSequence() error = %v, want %v and %v", err, ErrWeightSumMismatch, ErrOverflow)
	}
}

func TestNewFlows(t *testing.T) {
	if _, err := NewFlows(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("NewFlows() error = %v, want %v", err, ErrInvalidState)
	}
	f := Fl(flow{2, 200}, flow{1, 100})
	if got := must(f.Sum()); got.Cents() != 300 {
		t.Errorf("Sum() = %v, want 3.00", got)
	}
	if got := f.Terms().At(0).Float64(); got != 1 {
		t.Errorf("Terms()[0] = %v, want 1", got)
	}
}
