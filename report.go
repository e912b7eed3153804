package bperf

import (
	"context"
	"fmt"

	"github.com/etnz/bperf/date"
	"go.uber.org/zap"
)

// DataPointsFetcher provides the table of weighted priced points of a
// portfolio over a range of dates.
//
// Fetch fails with ErrInvalidArgument when the identifier is unknown or the
// range is invalid, and with ErrRuntimeFailure for any other failure.
type DataPointsFetcher interface {
	Fetch(ctx context.Context, identifier string, r date.Range) (WeightedPricedPointsTable, error)
}

// ReportEntry is one line of a report.
type ReportEntry struct {
	Name  string
	Value string
}

// Report is the performance attribution of a portfolio over a range, each
// component in percentage text ("12.32").
type Report struct {
	ID      string
	Range   date.Range
	Entries []ReportEntry
}

// Map returns the report as a component name to percentage text map.
func (r Report) Map() map[string]string {
	m := make(map[string]string, len(r.Entries))
	for _, e := range r.Entries {
		m[e.Name] = e.Value
	}
	return m
}

// MarshalJSON writes the components in report order.
func (r Report) MarshalJSON() ([]byte, error) {
	var perf jsonObjectWriter
	for _, e := range r.Entries {
		perf.Append(e.Name, e.Value)
	}
	var w jsonObjectWriter
	w.Optional("id", r.ID)
	w.Optional("from", r.Range.From)
	w.Optional("to", r.Range.To)
	w.Append("performance", &perf)
	return w.MarshalJSON()
}

// ReportGenerator fetches the data points of a portfolio and attributes its
// performance.
type ReportGenerator struct {
	Fetcher    DataPointsFetcher
	Calculator PerformanceCalculator
	Logger     *zap.Logger // nil means no logging
}

// Generate returns the report of identifier over r. Errors from the fetcher
// and the calculator are returned wrapped, nothing is retried.
func (g *ReportGenerator) Generate(ctx context.Context, identifier string, r date.Range) (Report, error) {
	log := g.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("portfolio", identifier), zap.Stringer("range", r))

	table, err := g.Fetcher.Fetch(ctx, identifier, r)
	if err != nil {
		log.Debug("fetch-data-points", zap.Error(err))
		return Report{}, fmt.Errorf("cannot fetch data points of %q: %w", identifier, err)
	}
	log.Debug("fetch-data-points", zap.Int("periods", table.Len()))

	perf, err := g.Calculator.Calculate(table)
	if err != nil {
		log.Debug("calculate-performance", zap.Error(err))
		return Report{}, fmt.Errorf("cannot calculate performance of %q: %w", identifier, err)
	}

	report := Report{ID: identifier, Range: r, Entries: make([]ReportEntry, 0, len(perf))}
	for _, c := range perf {
		report.Entries = append(report.Entries, ReportEntry{c.Name, c.Percent.String()})
	}
	log.Info("calculate-performance", zap.Stringer("total", perf.Total()))
	return report, nil
}
