package bperf

import "fmt"

// Flows is a non-empty, term sorted sequence of cash flows.
type Flows struct {
	flows TermedSequence[Money]
}

// NewFlows fails with ErrInvalidState if flows is empty or holds duplicate terms.
func NewFlows(flows ...Termed[Money]) (Flows, error) {
	s, err := NewTermedSequence(flows...)
	if err != nil {
		return Flows{}, fmt.Errorf("cannot instantiate Flows: %w", err)
	}
	if s.IsEmpty() {
		return Flows{}, fmt.Errorf("cannot instantiate Flows: values must be non-empty: %w", ErrInvalidState)
	}
	return Flows{s}, nil
}

// Flows returns the termed cash flows.
func (f Flows) Flows() TermedSequence[Money] { return f.flows }

func (f Flows) Terms() TermSequence { return f.flows.Terms() }

// Monies returns the amounts, in term order.
func (f Flows) Monies() MoneySequence { return MoneySequence{Collect(f.flows.Values())} }

// Sum returns the undiscounted total of the flows.
func (f Flows) Sum() (Money, error) { return f.Monies().Sum() }

// PV discounts every flow at its term on spot and sums them in term order.
func (f Flows) PV(spot SpotCurve) (PresentValue, error) {
	discounts, err := spot.DiscountsAt(f.Terms())
	if err != nil {
		return PresentValue{}, err
	}
	return f.Monies().PV(discounts)
}

// Equal reports whether both flows pay the same amounts at the same terms.
func (f Flows) Equal(o Flows) bool {
	return f.flows.EqualFunc(o.flows.Sequence, func(a, b Termed[Money]) bool { return a == b })
}
