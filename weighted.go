package bperf

import "fmt"

// WeightedPricedPoints is an instrument's points with its weight in the portfolio.
type WeightedPricedPoints struct {
	percent Percent
	points  PricedPoints
}

func NewWeightedPricedPoints(percent Percent, points PricedPoints) WeightedPricedPoints {
	return WeightedPricedPoints{percent: percent, points: points}
}

func (w WeightedPricedPoints) Percent() Percent     { return w.percent }
func (w WeightedPricedPoints) Points() PricedPoints { return w.points }

// fullWeight is the sum of the weights of a period, 100%.
var fullWeight = NewPercent(10000)

// WeightedPricedPointsSequence holds the instruments of one period. Their
// weights sum exactly to 100% unless the sequence is empty. Weights may be
// zero or negative.
type WeightedPricedPointsSequence struct{ Sequence[WeightedPricedPoints] }

// NewWeightedPricedPointsSequence fails with ErrWeightSumMismatch if values is
// not empty and the weights do not sum to 100%.
func NewWeightedPricedPointsSequence(values ...WeightedPricedPoints) (WeightedPricedPointsSequence, error) {
	s := WeightedPricedPointsSequence{NewSequence(values...)}
	if !s.IsEmpty() && !s.Percents().SumsTo(fullWeight) {
		sum, err := s.Percents().Sum()
		if err != nil {
			return WeightedPricedPointsSequence{}, fmt.Errorf("cannot instantiate WeightedPricedPointsSequence: %w: %w", ErrWeightSumMismatch, err)
		}
		return WeightedPricedPointsSequence{}, fmt.Errorf("cannot instantiate WeightedPricedPointsSequence: weights sum to %s%%: %w", sum, ErrWeightSumMismatch)
	}
	return s, nil
}

// Percents returns the weights, in order.
func (s WeightedPricedPointsSequence) Percents() PercentSequence {
	percents := make([]Percent, 0, s.Len())
	for w := range s.Values() {
		percents = append(percents, w.percent)
	}
	return PercentSequence{Sequence[Percent]{percents}}
}

// Points returns the priced points, in order.
func (s WeightedPricedPointsSequence) Points() PricedPointsSequence {
	points := make([]PricedPoints, 0, s.Len())
	for w := range s.Values() {
		points = append(points, w.points)
	}
	return PricedPointsSequence{Sequence[PricedPoints]{points}}
}

// WeightedPricedPointsTable holds successive periods, in chronological order.
type WeightedPricedPointsTable struct{ Sequence[WeightedPricedPointsSequence] }

func NewWeightedPricedPointsTable(periods ...WeightedPricedPointsSequence) WeightedPricedPointsTable {
	return WeightedPricedPointsTable{NewSequence(periods...)}
}
