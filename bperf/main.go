package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bperf/cmd"
	"github.com/google/subcommands"
)

func main() {
	// completes the command line and exits when invoked by the shell
	cmd.Completion(flag.CommandLine).Complete("bperf")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
