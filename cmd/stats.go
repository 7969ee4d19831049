package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cloudfx/journal"
	"github.com/cloudfx/journal/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the performance report for the journal" }
func (*statsCmd) Usage() string {
	return `tj stats

  Loads the journal and displays the derived performance report: trade
  count, win rate, total profit and the equity curve.
`
}

func (*statsCmd) SetFlags(*flag.FlagSet) {}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, snapshot, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	analytics := journal.Derive(snapshot)
	printMarkdown(renderer.Report(snapshot, analytics))
	return subcommands.ExitSuccess
}
