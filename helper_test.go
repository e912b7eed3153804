package bperf

import "math"

// must is a helper for test to unwrap constructors that are known to succeed.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// flow is a helper for test to write a cash flow of cents at a term.
type flow struct {
	term  float64
	cents int64
}

// knot is a helper for test to write a curve point.
type knot struct {
	term, rate float64
}

func Tm(v float64) Term           { return must(NewTerm(v)) }
func CR(v float64) ContinuousRate { return must(NewContinuousRate(v)) }
func PR(v float64) PeriodicRate   { return must(NewPeriodicRate(v)) }
func PV(v float64) PresentValue   { return must(NewPresentValue(v)) }
func Dc(v float64) Discount        { return must(NewDiscount(v)) }

func Fl(flows ...flow) Flows {
	termed := make([]Termed[Money], 0, len(flows))
	for _, f := range flows {
		termed = append(termed, NewTermed(Tm(f.term), NewMoney(f.cents)))
	}
	return must(NewFlows(termed...))
}

func Spot(knots ...knot) SpotCurve {
	termed := make([]Termed[ContinuousRate], 0, len(knots))
	for _, k := range knots {
		termed = append(termed, NewTermed(Tm(k.term), CR(k.rate)))
	}
	return must(NewSpotCurve(termed...))
}

func W(bps int64, points PricedPoints) WeightedPricedPoints {
	return NewWeightedPricedPoints(NewPercent(bps), points)
}

func Seq(values ...WeightedPricedPoints) WeightedPricedPointsSequence {
	return must(NewWeightedPricedPointsSequence(values...))
}

// p0 is a three flows bond observed over one period, where the curve moved
// up by a point and the spread tightened by half a point.
var p0 = must(NewPricedPoints(
	NewPricedFlows(
		Fl(flow{1.0, 1}, flow{2.0, 2}, flow{3.0, 3}),
		Spot(knot{1, 0.01}, knot{2, 0.02}, knot{3, 0.03}),
		CR(0.04),
	),
	NewPricedFlows(
		Fl(flow{0.998, 1}, flow{1.998, 2}, flow{2.998, 3}),
		Spot(knot{1, 0.02}, knot{2, 0.03}, knot{3, 0.04}),
		CR(0.035),
	),
))

// p1 is p0 reversed in time.
var p1 = must(NewPricedPoints(p0.Final(), p0.Initial()))

// near reports whether a and b are equal up to a relative tolerance of 1e-9.
func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
