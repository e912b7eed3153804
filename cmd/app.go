// Package cmd implements the CLI application to attribute the performance of
// bond portfolios.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bperf"
	"github.com/etnz/bperf/date"
	"github.com/etnz/bperf/marketdata"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Commands are the subcommands of the application, a main package registers
// them in its commander.
var Commands = []subcommands.Command{
	&reportCmd{},
	&pointsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile   = flag.String("config", defaultConfigFile, "Path to the YAML configuration file")
	dataFlag     = flag.String("data", "", "Market data: a JSONL file, a JSON document or an http(s) URL")
	selectFlag   = flag.String("select", "", "jsonpath expression selecting the records of a JSON document")
	currencyFlag = flag.String("currency", "", "ISO code of the currency used to display amounts")
	logFlag      = flag.String("log", "off", "Logging mode (off, dev, prod)")
)

// env is what every command needs to run.
type env struct {
	cfg      Config
	log      *zap.Logger
	holidays []date.Date
	calendar date.Calendar
}

// setup loads the configuration and builds the logger.
func setup() (*env, error) {
	cfg, err := LoadConfig(*configFile, flag.CommandLine)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(*logFlag)
	if err != nil {
		return nil, err
	}
	holidays, err := cfg.holidays()
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, holidays: holidays, calendar: date.NewCalendar(holidays...)}, nil
}

// newLogger builds a zap logger for mode.
func newLogger(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch mode {
	case "", "off":
		return zap.NewNop(), nil
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	case "dev", "development":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log mode %q, want off, dev or prod", mode)
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return cfg.Build()
}

// openStore reads the market data of the configuration.
func (e *env) openStore(ctx context.Context) (*marketdata.Store, error) {
	opts := marketdata.Options{
		Select:   e.cfg.Select,
		Holidays: e.holidays,
		Logger:   e.log,
	}
	if e.cfg.Cache > 0 {
		opts.Client = &http.Client{
			Transport: marketdata.NewCachingTransport(nil, e.cfg.Cache, e.log),
			Timeout:   time.Minute,
		}
	}
	return marketdata.Open(ctx, e.cfg.Data, opts)
}

// dateRange resolves the range of a command: explicit boundaries, or the
// period to date, measured on business days. Without to, the range ends on
// latest, or today if latest is zero.
func (e *env) dateRange(from, to, period string, latest date.Date) (date.Range, error) {
	end := latest
	if end.IsZero() {
		end = date.Today()
	}
	if to != "" {
		var err error
		if end, err = date.Parse(to); err != nil {
			return date.Range{}, err
		}
	}
	if from != "" {
		start, err := date.Parse(from)
		if err != nil {
			return date.Range{}, err
		}
		return date.Range{From: start, To: end}, nil
	}
	p, err := date.ParsePeriod(period)
	if err != nil {
		return date.Range{}, err
	}
	return e.calendar.ToDate(end, p), nil
}

// exitStatus reports err and converts it into an exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, bperf.ErrInvalidArgument) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal, or prints it as is if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
