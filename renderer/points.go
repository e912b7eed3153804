package renderer

import (
	"fmt"

	"github.com/etnz/bperf"
	"github.com/etnz/bperf/date"
	"github.com/etnz/bperf/marketdata"
)

// Points is the view of the data points of a portfolio, interval by interval.
type Points struct {
	ID        string
	Range     date.Range
	Intervals []PointsInterval
}

// PointsInterval lists the securities held over one interval.
type PointsInterval struct {
	Range date.Range
	Rows  []PointsRow
}

// PointsRow is a security with its prices at both ends of an interval, all
// amounts formatted in the currency of the report.
type PointsRow struct {
	Security string
	Weight   string
	Initial  string
	Final    string
	Payments string
}

// NewPoints prices every holding of the intervals and formats the amounts in
// currency.
func NewPoints(id string, r date.Range, intervals []marketdata.Interval, currency string) (*Points, error) {
	p := &Points{ID: id, Range: r, Intervals: make([]PointsInterval, 0, len(intervals))}
	for _, interval := range intervals {
		view := PointsInterval{Range: interval.Range, Rows: make([]PointsRow, 0, len(interval.Holdings))}
		for _, h := range interval.Holdings {
			initial, err := formatPrice(h.Points.Initial(), currency)
			if err != nil {
				return nil, fmt.Errorf("security %q on %s: %w", h.Security, interval.Range.From, err)
			}
			final, err := formatPrice(h.Points.Final(), currency)
			if err != nil {
				return nil, fmt.Errorf("security %q on %s: %w", h.Security, interval.Range.To, err)
			}
			payments, err := h.Points.Payments()
			if err != nil {
				return nil, fmt.Errorf("security %q over %s: %w", h.Security, interval.Range, err)
			}
			view.Rows = append(view.Rows, PointsRow{
				Security: h.Security,
				Weight:   h.Weight.String() + "%",
				Initial:  initial,
				Final:    final,
				Payments: payments.Format(currency),
			})
		}
		p.Intervals = append(p.Intervals, view)
	}
	return p, nil
}

// formatPrice rounds the price to the cent and formats it.
func formatPrice(p bperf.PricedFlows, currency string) (string, error) {
	pv, err := p.Price()
	if err != nil {
		return "", err
	}
	cents, err := bperf.FloatToInt(pv.Float64(), 2)
	if err != nil {
		return "", err
	}
	return bperf.NewMoney(cents).Format(currency), nil
}

// RenderPoints renders the data points to a markdown string.
func RenderPoints(p *Points) string {
	partials := map[string]string{
		"points_interval": "points_interval.md",
	}
	return renderTemplate("points", "points.md", partials, p)
}
