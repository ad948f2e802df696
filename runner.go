package bullion

import (
	"fmt"
	"strings"
)

// Action identifies one of the four recognized trade request kinds.
// The amount of a BUY request is a cash amount, the amount of a SELL request
// is a share count.
type Action string

const (
	ActionBuyGold    Action = "BUY_GOLD"
	ActionSellGold   Action = "SELL_GOLD"
	ActionBuySilver  Action = "BUY_SILVER"
	ActionSellSilver Action = "SELL_SILVER"
)

// ParseAction parses a trade action, case-insensitively.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToUpper(strings.TrimSpace(s))); a {
	case ActionBuyGold, ActionSellGold, ActionBuySilver, ActionSellSilver:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAction, s)
	}
}

// TradeRequest is one ordered entry of a trading day's batch.
type TradeRequest struct {
	Action Action
	Amount float64 // cash for a BUY, shares for a SELL
}

// runDayNotes marks ledger rows produced by the day runner.
const runDayNotes = "run_day"

// Runner orchestrates trading days against one ledger and one initial
// capital figure.
type Runner struct {
	ledger      *Ledger
	initialCash float64 // capital the P&L is measured against
}

// NewRunner returns a Runner recording to ledger, with P&L measured against
// initialCash.
func NewRunner(ledger *Ledger, initialCash float64) *Runner {
	return &Runner{ledger: ledger, initialCash: initialCash}
}

// RunDay processes one trading day: it builds the day's Quote, applies the
// requests in order against p, and on full success appends exactly one NAV
// row for the day.
//
// Durability is per trade: each successful trade is appended to the trades
// ledger immediately, with the post-mutation portfolio embedded in the row.
// The first failing request aborts the batch; earlier trades stay applied
// and keep their ledger rows, and the day's NAV row is skipped entirely.
func (r *Runner) RunDay(on Date, goldPrice, silverPrice float64, p *Portfolio, requests []TradeRequest) error {
	q, err := NewQuote(on, goldPrice, silverPrice)
	if err != nil {
		return err
	}

	for _, req := range requests {
		if err := r.execute(q, p, req); err != nil {
			return err
		}
	}

	if err := r.ledger.RecordDailyNAV(q, *p, r.initialCash); err != nil {
		return fmt.Errorf("could not record daily NAV for %s: %w", on, err)
	}
	return nil
}

// execute applies one trade request and appends its ledger row.
func (r *Runner) execute(q Quote, p *Portfolio, req TradeRequest) error {
	rec := TradeRecord{Date: q.Date, Fee: 0, Notes: runDayNotes}
	amount := req.Amount

	var err error
	switch req.Action {
	case ActionBuyGold:
		err = p.BuyGold(q, amount)
		boughtShares := amount / q.GoldPrice
		rec.Asset, rec.Action, rec.Price = Gold, "BUY", q.GoldPrice
		rec.CashAmount, rec.Shares = &amount, &boughtShares
	case ActionSellGold:
		err = p.SellGold(q, amount)
		rec.Asset, rec.Action, rec.Price = Gold, "SELL", q.GoldPrice
		rec.Shares = &amount
	case ActionBuySilver:
		err = p.BuySilver(q, amount)
		boughtShares := amount / q.SilverPrice
		rec.Asset, rec.Action, rec.Price = Silver, "BUY", q.SilverPrice
		rec.CashAmount, rec.Shares = &amount, &boughtShares
	case ActionSellSilver:
		err = p.SellSilver(q, amount)
		rec.Asset, rec.Action, rec.Price = Silver, "SELL", q.SilverPrice
		rec.Shares = &amount
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedAction, req.Action)
	}
	if err != nil {
		return err
	}

	snapshot, err := Value(*p, q, r.initialCash)
	if err != nil {
		return err
	}
	rec.After, rec.TotalAfter = *p, snapshot.TotalValue

	if err := r.ledger.RecordTrade(rec); err != nil {
		return fmt.Errorf("could not record %s %s trade on %s: %w", rec.Action, rec.Asset, q.Date, err)
	}
	return nil
}
