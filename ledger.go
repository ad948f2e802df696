package bullion

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
)

// File names inside the ledger directory.
const (
	TradesFile = "trades_ledger.csv" // append-only, one row per executed trade
	NAVFile    = "daily_nav.csv"     // append-only, one row per completed day
)

// timestampFormat is an ISO-8601 timestamp with second precision.
const timestampFormat = "2006-01-02T15:04:05"

// Ledger appends trade and daily NAV records to CSV files under a base
// directory. The directory is created on first write if absent; each file
// gets its header row exactly once, when the file does not previously exist.
//
// A Ledger assumes a single writer: concurrent appends to the same directory
// are undefined behavior.
type Ledger struct {
	dir string
}

// NewLedger returns a Ledger writing under dir.
func NewLedger(dir string) *Ledger { return &Ledger{dir: dir} }

// Dir returns the ledger base directory.
func (l *Ledger) Dir() string { return l.dir }

// TradeRecord is one executed trade together with the post-trade portfolio
// snapshot embedded in its ledger row.
type TradeRecord struct {
	Timestamp  time.Time
	Date       Date
	Asset      Asset
	Action     string   // "BUY" or "SELL"
	Price      float64  // execution price of the traded asset
	CashAmount *float64 // nil when not applicable to the action
	Shares     *float64 // nil when not applicable to the action
	Fee        float64  // reserved, always zero for now
	Notes      string
	After      Portfolio // portfolio state after the mutation
	TotalAfter float64   // marked-to-market total after the mutation
}

var tradesHeader = []string{
	"timestamp", "date", "asset", "action", "price", "cash_amount", "shares",
	"fee", "notes", "cash_after", "gold_shares_after", "silver_shares_after",
	"total_value_after",
}

var navHeader = []string{
	"date", "gold_price", "silver_price", "cash", "gold_shares", "silver_shares",
	"gold_value", "silver_value", "total_value", "pnl", "pnl_pct",
	"gold_weight", "silver_weight", "cash_weight",
}

// RecordTrade appends one trade row to the trades ledger.
func (l *Ledger) RecordTrade(rec TradeRecord) error {
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	row := []string{
		ts.Format(timestampFormat),
		rec.Date.String(),
		string(rec.Asset),
		rec.Action,
		price(rec.Price),
		optAmount(rec.CashAmount),
		optShares(rec.Shares),
		amount(rec.Fee),
		rec.Notes,
		amount(rec.After.Cash),
		shares(rec.After.GoldShares),
		shares(rec.After.SilverShares),
		amount(rec.TotalAfter),
	}
	return l.appendRow(TradesFile, tradesHeader, row)
}

// RecordDailyNAV appends the end-of-day NAV row for q to the NAV ledger.
// Weight ratios default to 0 when the total value is 0.
func (l *Ledger) RecordDailyNAV(q Quote, p Portfolio, initialCash float64) error {
	snapshot, err := Value(p, q, initialCash)
	if err != nil {
		return err
	}

	total := snapshot.TotalValue
	var pnlPct, goldWeight, silverWeight, cashWeight float64
	if initialCash != 0 {
		pnlPct = snapshot.PnL / initialCash
	}
	if total != 0 {
		goldWeight = snapshot.GoldValue / total
		silverWeight = snapshot.SilverValue / total
		cashWeight = p.Cash / total
	}

	row := []string{
		q.Date.String(),
		price(q.GoldPrice),
		price(q.SilverPrice),
		amount(p.Cash),
		shares(p.GoldShares),
		shares(p.SilverShares),
		amount(snapshot.GoldValue),
		amount(snapshot.SilverValue),
		amount(total),
		amount(snapshot.PnL),
		ratio(pnlPct),
		ratio(goldWeight),
		ratio(silverWeight),
		ratio(cashWeight),
	}
	return l.appendRow(NAVFile, navHeader, row)
}

// appendRow appends one CSV row to the named file, writing the header first
// when the file did not previously exist.
func (l *Ledger) appendRow(name string, header, row []string) error {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("could not create ledger directory %q: %w", l.dir, err)
	}

	path := filepath.Join(l.dir, name)
	_, statErr := os.Stat(path)
	existed := statErr == nil

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !existed {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("could not write header to %q: %w", path, err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("could not write row to %q: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

// Fixed-precision cell formats: prices and share counts carry 6 decimals,
// cash and value fields 2, ratios and percentages 6.

func price(v float64) string  { return decimal.NewFromFloat(v).StringFixed(6) }
func shares(v float64) string { return decimal.NewFromFloat(v).StringFixed(6) }
func amount(v float64) string { return decimal.NewFromFloat(v).StringFixed(2) }
func ratio(v float64) string  { return decimal.NewFromFloat(v).StringFixed(6) }

func optAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return amount(*v)
}

func optShares(v *float64) string {
	if v == nil {
		return ""
	}
	return shares(*v)
}
