package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cloudfx/journal"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the journal as a lossless JSON dump" }
func (*exportCmd) Usage() string {
	return `tj export [-o <file>]

  Dumps every record as a JSON array, one object per trade, with the exact
  sheet columns. Non-ASCII text is preserved as UTF-8. The dump can be
  re-imported or handed to any downstream analysis tool.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "File to write the dump to. Defaults to stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, snapshot, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	dump, err := journal.DumpJSON(snapshot)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		fmt.Printf("%s\n", dump)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, dump, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing dump to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d records to %s\n", snapshot.Len(), c.output)
	return subcommands.ExitSuccess
}
