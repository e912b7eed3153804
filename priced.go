package bperf

import "fmt"

// PricedFlows is the state of an instrument at one instant: its remaining
// cash flows, the spot curve, and the instrument spread over that curve.
type PricedFlows struct {
	flows  Flows
	spot   SpotCurve
	spread ContinuousRate
}

func NewPricedFlows(flows Flows, spot SpotCurve, spread ContinuousRate) PricedFlows {
	return PricedFlows{flows: flows, spot: spot, spread: spread}
}

func (p PricedFlows) Flows() Flows           { return p.flows }
func (p PricedFlows) Spot() SpotCurve        { return p.spot }
func (p PricedFlows) Spread() ContinuousRate { return p.spread }

// Price discounts the flows on the spot curve shifted by the spread.
func (p PricedFlows) Price() (PresentValue, error) {
	curve, err := p.spot.Add(p.spread)
	if err != nil {
		return PresentValue{}, err
	}
	return p.flows.PV(curve)
}

// UpdateFlows returns a copy of p with other flows.
func (p PricedFlows) UpdateFlows(flows Flows) PricedFlows {
	p.flows = flows
	return p
}

// UpdateSpot returns a copy of p with another spot curve.
func (p PricedFlows) UpdateSpot(spot SpotCurve) PricedFlows {
	p.spot = spot
	return p
}

// UpdateSpread returns a copy of p with another spread.
func (p PricedFlows) UpdateSpread(spread ContinuousRate) PricedFlows {
	p.spread = spread
	return p
}

func (p PricedFlows) Equal(o PricedFlows) bool {
	return p.flows.Equal(o.flows) && p.spot.Equal(o.spot.Curve) && p.spread == o.spread
}

// PricedPoints is an instrument observed at the start and at the end of a period.
type PricedPoints struct {
	initial PricedFlows
	final   PricedFlows
}

// NewPricedPoints fails with ErrInvalidState when the initial price is zero,
// and with the pricing error if it cannot be computed.
func NewPricedPoints(initial, final PricedFlows) (PricedPoints, error) {
	price, err := initial.Price()
	if err != nil {
		return PricedPoints{}, fmt.Errorf("cannot instantiate PricedPoints: %w", err)
	}
	if price.IsZero() {
		return PricedPoints{}, fmt.Errorf("cannot instantiate PricedPoints: initial price must be different from zero: %w", ErrInvalidState)
	}
	return PricedPoints{initial: initial, final: final}, nil
}

func (p PricedPoints) Initial() PricedFlows { return p.initial }
func (p PricedPoints) Final() PricedFlows   { return p.final }

// Payments is the cash paid out over the period: the initial flows not
// found in the final ones.
func (p PricedPoints) Payments() (Money, error) {
	initial, err := p.initial.flows.Sum()
	if err != nil {
		return Money{}, err
	}
	final, err := p.final.flows.Sum()
	if err != nil {
		return Money{}, err
	}
	return initial.Sub(final)
}

func (p PricedPoints) Equal(o PricedPoints) bool {
	return p.initial.Equal(o.initial) && p.final.Equal(o.final)
}

// PricedPointsSequence is an immutable sequence of priced points.
type PricedPointsSequence struct{ Sequence[PricedPoints] }

func NewPricedPointsSequence(values ...PricedPoints) PricedPointsSequence {
	return PricedPointsSequence{NewSequence(values...)}
}
