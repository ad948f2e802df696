package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/bullion"
	"github.com/google/subcommands"
)

type dayCmd struct {
	date   string
	gold   float64
	silver float64
	cash   float64
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "run one trading day with optional trades" }
func (*dayCmd) Usage() string {
	return `bsim day -gold <price> -silver <price> [-d <date>] [ACTION AMOUNT]...

  Runs one trading day against the saved portfolio: applies the given trades
  in order, appends the day's NAV row, and saves the session state.

  Trades are given as action/amount pairs, where the amount is cash for a
  BUY and shares for a SELL:

    bsim day -d 2026-02-03 -gold 2010 -silver 24.8 SELL_GOLD 5 BUY_SILVER 2500

  Supported actions: BUY_GOLD, SELL_GOLD, BUY_SILVER, SELL_SILVER.
  A failing trade aborts the rest of the batch; trades already applied stay
  recorded, and the day's NAV row and state save are skipped.
`
}

func (c *dayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trading date (defaults to today)")
	f.Float64Var(&c.gold, "gold", 0, "Gold price for the day")
	f.Float64Var(&c.silver, "silver", 0, "Silver price for the day")
	f.Float64Var(&c.cash, "cash", bullion.DefaultInitialCash, "Initial capital the P&L is measured against")
}

func (c *dayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	requests, err := parseTradeArgs(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, _, err := Store().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading state: %v\n", err)
		return subcommands.ExitFailure
	}
	if p == nil {
		fmt.Fprintln(os.Stderr, "Error: no saved portfolio, run 'bsim init' first")
		return subcommands.ExitFailure
	}

	runner := bullion.NewRunner(Ledger(), c.cash)
	if err := runner.RunDay(on, c.gold, c.silver, p, requests); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	q, err := bullion.NewQuote(on, c.gold, c.silver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := Store().Save(*p, &q); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving state: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot, err := bullion.Value(*p, q, c.cash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(valuationMarkdown("Day Recorded", *p, snapshot))
	return subcommands.ExitSuccess
}

// parseTradeArgs turns positional "ACTION AMOUNT" pairs into trade requests.
func parseTradeArgs(args []string) ([]bullion.TradeRequest, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("trades must be ACTION AMOUNT pairs, got %d arguments", len(args))
	}

	var requests []bullion.TradeRequest
	for i := 0; i < len(args); i += 2 {
		action, err := bullion.ParseAction(args[i])
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q for %s: %w", args[i+1], action, err)
		}
		requests = append(requests, bullion.TradeRequest{Action: action, Amount: amount})
	}
	return requests, nil
}
