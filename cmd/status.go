package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bullion"
	"github.com/google/subcommands"
)

type statusCmd struct {
	cash float64
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "display the saved portfolio marked at the last quote" }
func (*statusCmd) Usage() string {
	return `bsim status

  Displays the current holdings from the session state. When a last quote is
  available, holdings are marked to market against it.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.cash, "cash", bullion.DefaultInitialCash, "Initial capital the P&L is measured against")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, last, err := Store().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading state: %v\n", err)
		return subcommands.ExitFailure
	}
	if p == nil {
		fmt.Fprintln(os.Stderr, "No saved portfolio, run 'bsim init' first.")
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Current Portfolio\n\n")
	fmt.Fprintf(&b, "| Holding | Balance |\n|---------|--------|\n")
	fmt.Fprintf(&b, "| Cash | %s |\n", usd(p.Cash))
	fmt.Fprintf(&b, "| Gold | %.6f shares |\n", p.GoldShares)
	fmt.Fprintf(&b, "| Silver | %.6f shares |\n", p.SilverShares)

	if last != nil {
		snapshot, err := bullion.Value(*p, *last, c.cash)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(&b, "\nMarked to market at the last quote (%s):\n\n", last.Date)
		fmt.Fprintf(&b, "| Metric | Value |\n|--------|-------|\n")
		fmt.Fprintf(&b, "| Gold value | %s |\n", usd(snapshot.GoldValue))
		fmt.Fprintf(&b, "| Silver value | %s |\n", usd(snapshot.SilverValue))
		fmt.Fprintf(&b, "| Total | %s |\n", usd(snapshot.TotalValue))
		fmt.Fprintf(&b, "| P&L | %s |\n", signedUSD(snapshot.PnL))
	} else {
		fmt.Fprintf(&b, "\nNo last quote on record, run 'bsim day' to mark to market.\n")
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
