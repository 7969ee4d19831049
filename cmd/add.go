package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cloudfx/journal"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	time       string
	direction  string
	timeframe  string
	targetRR   string
	actualRR   string
	profit     string
	setup      string
	notes      string
	screenshot string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new trade in the journal" }
func (*addCmd) Usage() string {
	return `tj add -direction <Buy|Sell> -tf <M5..D1> -profit <amount> [options]

  Records a new trade. The record gets the next free id and the whole sheet
  is rewritten; on a conflict with another session, reload and retry.

Usage Examples:
$ tj add -direction Buy -tf H1 -target-rr 2 -actual-rr 1.4 -profit 125.50 -setup "london breakout"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.time, "time", time.Now().Format(journal.TimeFormat), "Trade date and time.")
	f.StringVar(&c.direction, "direction", "", "Trade direction: Buy or Sell.")
	f.StringVar(&c.timeframe, "tf", "", "Chart timeframe: M5, M15, M30, H1, H4 or D1.")
	f.StringVar(&c.targetRR, "target-rr", "0", "Planned risk-reward multiple.")
	f.StringVar(&c.actualRR, "actual-rr", "0", "Realized risk-reward multiple.")
	f.StringVar(&c.profit, "profit", "0", "Realized profit in USD, negative for a loss.")
	f.StringVar(&c.setup, "setup", "", "Entry setup description.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
	f.StringVar(&c.screenshot, "screenshot", "", "Reference to a chart screenshot.")
}

func (c *addCmd) fields() (journal.Fields, error) {
	var f journal.Fields
	var err error
	if f.Time, err = time.ParseInLocation(journal.TimeFormat, c.time, time.Local); err != nil {
		return f, fmt.Errorf("invalid -time: %v", err)
	}
	if f.TargetRR, err = decimal.NewFromString(c.targetRR); err != nil {
		return f, fmt.Errorf("invalid -target-rr: %v", err)
	}
	if f.ActualRR, err = decimal.NewFromString(c.actualRR); err != nil {
		return f, fmt.Errorf("invalid -actual-rr: %v", err)
	}
	if f.Profit, err = decimal.NewFromString(c.profit); err != nil {
		return f, fmt.Errorf("invalid -profit: %v", err)
	}
	f.Direction = journal.Direction(c.direction)
	f.Timeframe = journal.Timeframe(c.timeframe)
	f.Setup = c.setup
	f.Notes = c.notes
	f.Screenshot = c.screenshot
	return f, nil
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fields, err := c.fields()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	sync, snapshot, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	_, rec, err := sync.Append(ctx, snapshot, fields)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitStatus(err)
	}

	fmt.Printf("Recorded trade %d (%s %s, %s).\n", rec.ID, rec.Direction, rec.Timeframe, rec.Profit)
	return subcommands.ExitSuccess
}
