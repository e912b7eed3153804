package cmd

import (
	"flag"

	"github.com/etnz/bperf"
	"github.com/etnz/bperf/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var periods = predict.Set{"day", "week", "month", "quarter", "year"}

// predictions for flags whose values are known in advance, by name.
var predictions = map[string]complete.Predictor{
	"config":   predict.Files("*.yaml"),
	"data":     predict.Files("*"),
	"log":      predict.Set{"off", "dev", "prod"},
	"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
	"p":        periods,
	"effects":  predict.Set(bperf.EffectNames()),
}

// Completion returns the shell completion of the application: the global
// flags and every command with its own flags.
func Completion(global *flag.FlagSet) *complete.Command {
	c := &complete.Command{
		Flags: flags(global),
		Sub:   make(map[string]*complete.Command, len(Commands)),
	}
	for _, sub := range Commands {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		c.Sub[sub.Name()] = &complete.Command{Flags: flags(fs)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		c.Sub["topic"].Args = predict.Set(topics)
	}
	return c
}

func flags(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := predictions[f.Name]; ok {
			m[f.Name] = p
			return
		}
		m[f.Name] = predict.Nothing
	})
	return m
}
