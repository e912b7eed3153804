package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bperf"
	"github.com/etnz/bperf/renderer"
	"github.com/google/subcommands"
)

type pointsCmd struct {
	id     string
	from   string
	to     string
	period string
}

func (*pointsCmd) Name() string     { return "points" }
func (*pointsCmd) Synopsis() string { return "display the data points of a portfolio" }
func (*pointsCmd) Usage() string {
	return `bperf points -id <portfolio> [-from <date>] [-to <date>] [-p <period>]

  Displays, for every interval between two observations of the portfolio,
  the weight of each security and its prices at both ends of the interval.
`
}

func (c *pointsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "The portfolio identifier.")
	f.StringVar(&c.from, "from", "", "The start date of the range.")
	f.StringVar(&c.to, "to", "", "The end date of the range (defaults to the last observation).")
	f.StringVar(&c.period, "p", "month", "Period to date when -from is not set (day, week, month, quarter, year).")
}

func (c *pointsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	intervals, err := store.Intervals(ctx, c.id, r)
	if err != nil {
		return exitStatus(err)
	}
	points, err := renderer.NewPoints(c.id, r, intervals, e.cfg.Currency)
	if err != nil {
		return exitStatus(err)
	}
	printMarkdown(renderer.RenderPoints(points))
	return subcommands.ExitSuccess
}
