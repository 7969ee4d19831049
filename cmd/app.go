// Package cmd implements the CLI application to manage a cloud trading
// journal. A main package registers Commands with a subcommands.Commander
// and calls Execute() on the user-selected one.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/cloudfx/journal"
	"github.com/cloudfx/journal/gsheet"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the tool, in help order.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&listCmd{},
	&statsCmd{},
	&exportCmd{},
	&reportCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the app configuration.

const (
	spreadsheetEnv = "TJ_SPREADSHEET"
	tokenEnv       = "TJ_ACCESS_TOKEN"
	apiKeyEnv      = "TJ_API_KEY"
)

var spreadsheetFlag = flag.String("spreadsheet", "", "Google Sheets URL or spreadsheet id holding the journal.\n If missing it is read from the environment variable \""+spreadsheetEnv+"\".")
var sheetFlag = flag.String("sheet", "Sheet1", "Worksheet name of the journal table.")
var tokenFlag = flag.String("access-token", "", "OAuth2 access token used for reads and writes.\n If missing it is read from the environment variable \""+tokenEnv+"\".")
var apiKeyFlag = flag.String("api-key", "", "API key used for read-only access to public sheets.\n If missing it is read from the environment variable \""+apiKeyEnv+"\".")

func envFallback(flagValue *string, env string) string {
	if *flagValue == "" {
		*flagValue = os.Getenv(env)
	}
	return *flagValue
}

// newSynchronizer builds the synchronizer over the configured sheet.
func newSynchronizer() (*journal.Synchronizer, error) {
	spreadsheet := envFallback(spreadsheetFlag, spreadsheetEnv)
	if spreadsheet == "" {
		return nil, fmt.Errorf("no spreadsheet configured: use -spreadsheet or set $%s", spreadsheetEnv)
	}
	store := &gsheet.Client{
		SpreadsheetID: gsheet.SpreadsheetID(spreadsheet),
		Sheet:         *sheetFlag,
		Token:         envFallback(tokenFlag, tokenEnv),
		APIKey:        envFallback(apiKeyFlag, apiKeyEnv),
	}
	return journal.NewSynchronizer(store), nil
}

// loadSnapshot performs the remote read every command starts from, and
// reports coercion warnings without failing the command.
func loadSnapshot(ctx context.Context) (*journal.Synchronizer, *journal.Snapshot, error) {
	sync, err := newSynchronizer()
	if err != nil {
		return nil, nil, err
	}
	snapshot, err := sync.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, issue := range snapshot.Issues() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", issue)
	}
	return sync, snapshot, nil
}

// exitStatus maps an operation error to an exit code, printing a retry hint
// on write conflicts.
func exitStatus(err error) subcommands.ExitStatus {
	if errors.Is(err, journal.ErrWriteConflict) {
		fmt.Fprintln(os.Stderr, "another session changed the sheet; run the command again on fresh data")
	}
	if errors.Is(err, journal.ErrInvalidInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders a markdown document for the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// fall back to the raw markdown, still perfectly readable.
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
