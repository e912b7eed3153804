// Package marketdata stores the curves and the portfolio positions observed
// day by day, and serves them as the data points of the performance
// attribution.
package marketdata

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/bperf"
	"github.com/etnz/bperf/date"
	"go.uber.org/zap"
)

// Position is a security held by a portfolio on a given day: its weight, the
// curve and the spread it is priced on, and its remaining cash flows.
//
// Flows are kept as decoded, they are only checked when the position is
// priced. A matured security has no flows.
type Position struct {
	Portfolio string
	Security  string
	Weight    bperf.Percent
	Curve     string
	Spread    bperf.ContinuousRate
	Flows     []bperf.Termed[bperf.Money]
}

// snapshot is the content of a portfolio on a day, by security.
type snapshot map[string]Position

// Store is an in-memory database of curves and positions.
//
// It implements bperf.DataPointsFetcher.
type Store struct {
	calendar   date.Calendar
	curves     map[string]*date.History[bperf.SpotCurve]
	portfolios map[string]*date.History[snapshot]
	log        *zap.Logger
}

// NewStore returns an empty store using calendar to check business days. A
// nil logger means no logging.
func NewStore(calendar date.Calendar, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		calendar:   calendar,
		curves:     make(map[string]*date.History[bperf.SpotCurve]),
		portfolios: make(map[string]*date.History[snapshot]),
		log:        log,
	}
}

// AddCurve records the curve called name as observed on day. It replaces any
// curve of that name on that day.
func (s *Store) AddCurve(on date.Date, name string, curve bperf.SpotCurve) {
	h, ok := s.curves[name]
	if !ok {
		h = new(date.History[bperf.SpotCurve])
		s.curves[name] = h
	}
	h.Append(on, curve)
}

// AddPosition records a position observed on day. It replaces any position
// of the same security in that portfolio on that day.
func (s *Store) AddPosition(on date.Date, p Position) {
	h, ok := s.portfolios[p.Portfolio]
	if !ok {
		h = new(date.History[snapshot])
		s.portfolios[p.Portfolio] = h
	}
	snap, ok := h.Get(on)
	if !ok {
		snap = make(snapshot)
		h.Append(on, snap)
	}
	snap[p.Security] = p
}

// Portfolios returns the known portfolio identifiers, sorted.
func (s *Store) Portfolios() []string { return slices.Sorted(maps.Keys(s.portfolios)) }

// Curves returns the known curve names, sorted.
func (s *Store) Curves() []string { return slices.Sorted(maps.Keys(s.curves)) }

// LastObservation returns the latest day the portfolio identifier was
// observed on, or false if it is unknown.
func (s *Store) LastObservation(identifier string) (date.Date, bool) {
	h, ok := s.portfolios[identifier]
	if !ok {
		return date.Date{}, false
	}
	day, _, ok := h.Latest()
	return day, ok
}

// Holding is one security of a portfolio over an interval.
type Holding struct {
	Security string
	Weight   bperf.Percent
	Points   bperf.PricedPoints
}

// Interval is a sub-period between two consecutive observations of a
// portfolio, with the securities held at its start.
type Interval struct {
	Range    date.Range
	Holdings []Holding
}

// Intervals splits r at every observation of the portfolio identifier and
// prices the securities held at the start of each interval at both of its
// ends.
//
// It fails with bperf.ErrInvalidArgument if r is not a valid range of
// business days or the portfolio is unknown, and with bperf.ErrRuntimeFailure
// if the data are missing or do not price.
func (s *Store) Intervals(ctx context.Context, identifier string, r date.Range) ([]Interval, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", bperf.ErrInvalidArgument, err)
	}
	for _, d := range []date.Date{r.From, r.To} {
		if !s.calendar.IsBusinessDay(d) {
			return nil, fmt.Errorf("%w: %s is not a business day", bperf.ErrInvalidArgument, d)
		}
	}
	h, ok := s.portfolios[identifier]
	if !ok {
		return nil, fmt.Errorf("%w: unknown portfolio %q", bperf.ErrInvalidArgument, identifier)
	}

	days := h.Days(r)
	if len(days) == 0 || days[0] != r.From {
		return nil, fmt.Errorf("%w: portfolio %q has no observation on %s", bperf.ErrRuntimeFailure, identifier, r.From)
	}
	if days[len(days)-1] != r.To {
		return nil, fmt.Errorf("%w: portfolio %q has no observation on %s", bperf.ErrRuntimeFailure, identifier, r.To)
	}

	intervals := make([]Interval, 0, len(days)-1)
	for i := 1; i < len(days); i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", bperf.ErrRuntimeFailure, err)
		}
		interval, err := s.interval(h, date.Range{From: days[i-1], To: days[i]})
		if err != nil {
			return nil, fmt.Errorf("%w: portfolio %q: %w", bperf.ErrRuntimeFailure, identifier, err)
		}
		intervals = append(intervals, interval)
	}
	s.log.Debug("fetch-intervals", zap.String("portfolio", identifier), zap.Stringer("range", r), zap.Int("intervals", len(intervals)))
	return intervals, nil
}

// interval pairs every position at the start of r with the same security at
// its end.
func (s *Store) interval(h *date.History[snapshot], r date.Range) (Interval, error) {
	start, _ := h.Get(r.From)
	end, _ := h.Get(r.To)
	interval := Interval{Range: r, Holdings: make([]Holding, 0, len(start))}
	for _, security := range slices.Sorted(maps.Keys(start)) {
		p0 := start[security]
		p1, ok := end[security]
		if !ok {
			return Interval{}, fmt.Errorf("security %q held on %s has no position on %s", security, r.From, r.To)
		}
		initial, err := s.priced(r.From, p0)
		if err != nil {
			return Interval{}, err
		}
		final, err := s.priced(r.To, p1)
		if err != nil {
			return Interval{}, err
		}
		points, err := bperf.NewPricedPoints(initial, final)
		if err != nil {
			return Interval{}, fmt.Errorf("security %q over %s: %w", security, r, err)
		}
		interval.Holdings = append(interval.Holdings, Holding{Security: security, Weight: p0.Weight, Points: points})
	}
	return interval, nil
}

// priced returns the position priced on its curve as of day.
func (s *Store) priced(on date.Date, p Position) (bperf.PricedFlows, error) {
	flows, err := bperf.NewFlows(p.Flows...)
	if err != nil {
		return bperf.PricedFlows{}, fmt.Errorf("security %q on %s: %w", p.Security, on, err)
	}
	h, ok := s.curves[p.Curve]
	if !ok {
		return bperf.PricedFlows{}, fmt.Errorf("security %q: unknown curve %q", p.Security, p.Curve)
	}
	curve, ok := h.ValueAsOf(on)
	if !ok {
		return bperf.PricedFlows{}, fmt.Errorf("security %q: no curve %q on or before %s", p.Security, p.Curve, on)
	}
	return bperf.NewPricedFlows(flows, curve, p.Spread), nil
}

// Fetch returns the table of the weighted priced points of the portfolio
// identifier over r, one period per interval.
func (s *Store) Fetch(ctx context.Context, identifier string, r date.Range) (bperf.WeightedPricedPointsTable, error) {
	intervals, err := s.Intervals(ctx, identifier, r)
	if err != nil {
		return bperf.WeightedPricedPointsTable{}, err
	}
	periods := make([]bperf.WeightedPricedPointsSequence, 0, len(intervals))
	for _, interval := range intervals {
		weighted := make([]bperf.WeightedPricedPoints, 0, len(interval.Holdings))
		for _, h := range interval.Holdings {
			weighted = append(weighted, bperf.NewWeightedPricedPoints(h.Weight, h.Points))
		}
		period, err := bperf.NewWeightedPricedPointsSequence(weighted...)
		if err != nil {
			return bperf.WeightedPricedPointsTable{}, fmt.Errorf("%w: portfolio %q over %s: %w", bperf.ErrRuntimeFailure, identifier, interval.Range, err)
		}
		periods = append(periods, period)
	}
	return bperf.NewWeightedPricedPointsTable(periods...), nil
}
