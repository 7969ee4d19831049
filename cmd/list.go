package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cloudfx/journal/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list every trade in the journal, newest first" }
func (*listCmd) Usage() string {
	return `tj list

  Displays the full journal as a table, by id descending.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, snapshot, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Records(snapshot))
	return subcommands.ExitSuccess
}
