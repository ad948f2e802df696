package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/bullion"
	"github.com/google/subcommands"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "derive the dashboard CSV from the NAV ledger" }
func (*exportCmd) Usage() string {
	return `bsim export

  Rewrites the dashboard file (Date, total_value, cash, gold_value,
  silver_value; sorted by date) from the daily NAV ledger.
`
}

func (*exportCmd) SetFlags(f *flag.FlagSet) {}

func (*exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l := Ledger()
	if err := l.ExportDaily(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %s\n", filepath.Join(l.Dir(), bullion.DailyExportFile))
	return subcommands.ExitSuccess
}
