package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bullion"
	"github.com/google/subcommands"
)

type initCmd struct {
	date      string
	gold      float64
	silver    float64
	cash      float64
	goldRatio float64
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "initialize the day-zero portfolio" }
func (*initCmd) Usage() string {
	return `bsim init -gold <price> -silver <price> [-d <date>] [-cash <amount>] [-gold-ratio <ratio>]

  Splits the initial cash between gold and silver at the given day-zero
  prices, prints the resulting portfolio, and saves the session state.
  The silver ratio is always 1 minus the gold ratio.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day-zero date (defaults to today)")
	f.Float64Var(&c.gold, "gold", 0, "Day-zero gold price")
	f.Float64Var(&c.silver, "silver", 0, "Day-zero silver price")
	f.Float64Var(&c.cash, "cash", bullion.DefaultInitialCash, "Initial cash to invest")
	f.Float64Var(&c.goldRatio, "gold-ratio", bullion.DefaultGoldRatio, "Share of the initial cash allocated to gold")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	q, err := bullion.NewQuote(on, c.gold, c.silver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := bullion.Initialize(q, c.cash, c.goldRatio, 1-c.goldRatio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := Store().Save(p, &q); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving state: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot, err := bullion.Value(p, q, c.cash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(valuationMarkdown("Day-0 Portfolio", p, snapshot))
	return subcommands.ExitSuccess
}

// parseDateFlag parses a -d flag value, defaulting to today when empty.
func parseDateFlag(s string) (bullion.Date, error) {
	if s == "" {
		return bullion.Today(), nil
	}
	return bullion.ParseDate(s)
}

// valuationMarkdown renders a portfolio valuation as a small markdown report.
func valuationMarkdown(title string, p bullion.Portfolio, s bullion.ValuationSnapshot) string {
	return fmt.Sprintf(`# %s (%s)

| Metric | Value |
|--------|-------|
| Gold value | %s |
| Silver value | %s |
| Cash | %s |
| Total | %s |
| P&L | %s |

Holdings: %.6f gold shares, %.6f silver shares (fractional shares allowed).
`, title, s.Date, usd(s.GoldValue), usd(s.SilverValue), usd(s.Cash),
		usd(s.TotalValue), signedUSD(s.PnL), p.GoldShares, p.SilverShares)
}
