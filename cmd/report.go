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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write the performance report as a markdown document" }
func (*reportCmd) Usage() string {
	return `tj report [-o <file>]

  Renders the performance report to a markdown file: summary metrics, the
  equity curve and the most recent trades. The output is deterministic for
  a given journal state, so reports can be archived and diffed.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "report.md", "File to write the report to, '-' for stdout.")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, snapshot, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	doc := renderer.Report(snapshot, journal.Derive(snapshot))

	if c.output == "-" {
		fmt.Print(doc)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, []byte(doc), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report written to %s\n", c.output)
	return subcommands.ExitSuccess
}
