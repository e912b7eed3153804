package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/bperf"
	"github.com/etnz/bperf/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	id      string
	from    string
	to      string
	period  string
	effects string
	json    bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "attribute the performance of a portfolio" }
func (*reportCmd) Usage() string {
	return `bperf report -id <portfolio> [-from <date>] [-to <date>] [-p <period>] [-effects <names>] [-json]

  Attributes the total return of a portfolio to the carry, curve and spread
  effects, and reports what they do not explain as the residual. Without
  -from, the range is the period to date ending on -to (the last observation of the portfolio
  by default).
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "The portfolio identifier.")
	f.StringVar(&c.from, "from", "", "The start date of the range.")
	f.StringVar(&c.to, "to", "", "The end date of the range (defaults to the last observation).")
	f.StringVar(&c.period, "p", "month", "Period to date when -from is not set (day, week, month, quarter, year).")
	f.StringVar(&c.effects, "effects", "", "Comma separated effects to report, in order (defaults to the configuration).")
	f.BoolVar(&c.json, "json", false, "Print the report as a JSON object.")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(f.Output(), "missing -id")
		return subcommands.ExitUsageError
	}
	e, err := setup()
	if err != nil {
		return exitStatus(err)
	}
	defer e.log.Sync()

	store, err := e.openStore(ctx)
	if err != nil {
		return exitStatus(err)
	}
	latest, _ := store.LastObservation(c.id)
	r, err := e.dateRange(c.from, c.to, c.period, latest)
	if err != nil {
		return exitStatus(fmt.Errorf("%w: %w", bperf.ErrInvalidArgument, err))
	}
	effects := e.cfg.Effects
	if c.effects != "" {
		effects = strings.Split(c.effects, ",")
	}
	attribution, err := bperf.NewDefaultAttribution(effects...)
	if err != nil {
		// effect names come from the command line or the configuration
		return exitStatus(fmt.Errorf("%w: %w", bperf.ErrInvalidArgument, err))
	}

	gen := bperf.ReportGenerator{Fetcher: store, Calculator: attribution, Logger: e.log}
	report, err := gen.Generate(ctx, c.id, r)
	if err != nil {
		return exitStatus(err)
	}

	if c.json {
		b, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return exitStatus(err)
		}
		fmt.Println(string(b))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
