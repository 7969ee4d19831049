package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	id int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a trade from the journal by id" }
func (*rmCmd) Usage() string {
	return `tj rm -id <id>

  Deletes the record with the given id and rewrites the whole sheet.
  Records are never edited in place: to correct a trade, rm it and add it
  again.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the record to delete.")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(os.Stderr, "a positive -id is required")
		return subcommands.ExitUsageError
	}

	sync, snapshot, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if _, found := snapshot.ByID(c.id); !found {
		fmt.Fprintf(os.Stderr, "warning: no record with id %d, nothing to delete\n", c.id)
	}

	if _, err := sync.Delete(ctx, snapshot, c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitStatus(err)
	}

	fmt.Printf("Deleted record %d from the journal.\n", c.id)
	return subcommands.ExitSuccess
}
