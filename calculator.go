package bperf

// TwoPointsCalculator computes a periodic rate out of a single instrument
// observed at the start and at the end of a period.
//
// Total performance and each effect are TwoPointsCalculators: the effects
// differ only in which part of the final state they substitute into the
// initial one.
type TwoPointsCalculator interface {
	Calculate(points PricedPoints) (PeriodicRate, error)
}

// TwoPointsTotal is the total return of the points, payments included.
type TwoPointsTotal struct{}

func (TwoPointsTotal) Calculate(points PricedPoints) (PeriodicRate, error) {
	return growth(points.initial, points.final, &points)
}

// TwoPointsCarryEffect is the return of the initial state repriced with the
// final flows, curve and spread unchanged, payments included. It isolates
// the passage of time and the cash received.
type TwoPointsCarryEffect struct{}

func (TwoPointsCarryEffect) Calculate(points PricedPoints) (PeriodicRate, error) {
	return growth(points.initial, points.initial.UpdateFlows(points.final.flows), &points)
}

// TwoPointsCurveEffect is the return of the initial state repriced on the
// final spot curve.
type TwoPointsCurveEffect struct{}

func (TwoPointsCurveEffect) Calculate(points PricedPoints) (PeriodicRate, error) {
	return growth(points.initial, points.initial.UpdateSpot(points.final.spot), nil)
}

// TwoPointsSpreadEffect is the return of the initial state repriced with the
// final spread.
type TwoPointsSpreadEffect struct{}

func (TwoPointsSpreadEffect) Calculate(points PricedPoints) (PeriodicRate, error) {
	return growth(points.initial, points.initial.UpdateSpread(points.final.spread), nil)
}

// growth prices both states and returns the growth from initial to final.
// The payments of paid are counted when it is not nil.
func growth(initial, final PricedFlows, paid *PricedPoints) (PeriodicRate, error) {
	start, err := initial.Price()
	if err != nil {
		return PeriodicRate{}, err
	}
	end, err := final.Price()
	if err != nil {
		return PeriodicRate{}, err
	}
	var payments float64
	if paid != nil {
		m, err := paid.Payments()
		if err != nil {
			return PeriodicRate{}, err
		}
		payments = m.Float64()
	}
	return start.Growth(end, payments)
}
