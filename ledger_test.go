package bullion

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// readCSV reads a whole CSV file for assertions, header included.
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("could not open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("could not read %s: %v", path, err)
	}
	return rows
}

func fptr(v float64) *float64 { return &v }

func TestLedger_RecordTrade(t *testing.T) {
	dir := t.TempDir()
	l := NewLedger(filepath.Join(dir, "data")) // parent must be created on first write

	rec := TradeRecord{
		Timestamp:  time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC),
		Date:       MustParseDate("2026-02-03"),
		Asset:      Gold,
		Action:     "BUY",
		Price:      2000,
		CashAmount: fptr(1000),
		Shares:     fptr(0.5),
		Notes:      "run_day",
		After:      Portfolio{Cash: 4000, GoldShares: 0.5},
		TotalAfter: 5000,
	}
	if err := l.RecordTrade(rec); err != nil {
		t.Fatalf("RecordTrade() error = %v", err)
	}

	rows := readCSV(t, filepath.Join(l.Dir(), TradesFile))
	if len(rows) != 2 {
		t.Fatalf("trades ledger has %d rows, want header + 1", len(rows))
	}
	if got, want := strings.Join(rows[0], ","), strings.Join(tradesHeader, ","); got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
	want := []string{
		"2026-02-03T10:30:00", "2026-02-03", "GOLD", "BUY", "2000.000000",
		"1000.00", "0.500000", "0.00", "run_day", "4000.00", "0.500000",
		"0.000000", "5000.00",
	}
	if got := strings.Join(rows[1], ","); got != strings.Join(want, ",") {
		t.Errorf("row = %q, want %q", got, strings.Join(want, ","))
	}
}

func TestLedger_SellRowHasEmptyCashAmount(t *testing.T) {
	l := NewLedger(t.TempDir())

	rec := TradeRecord{
		Date:       MustParseDate("2026-02-04"),
		Asset:      Silver,
		Action:     "SELL",
		Price:      25,
		Shares:     fptr(10),
		Notes:      "run_day",
		After:      Portfolio{Cash: 250, SilverShares: 90},
		TotalAfter: 2500,
	}
	if err := l.RecordTrade(rec); err != nil {
		t.Fatalf("RecordTrade() error = %v", err)
	}

	rows := readCSV(t, filepath.Join(l.Dir(), TradesFile))
	if got := rows[1][5]; got != "" {
		t.Errorf("cash_amount cell = %q, want empty on a SELL row", got)
	}
	if got := rows[1][6]; got != "10.000000" {
		t.Errorf("shares cell = %q, want %q", got, "10.000000")
	}
}

func TestLedger_HeaderWrittenOnce(t *testing.T) {
	l := NewLedger(t.TempDir())
	q, _ := NewQuote(MustParseDate("2026-02-03"), 2000, 25)
	p := Portfolio{Cash: 100}

	for i := 0; i < 3; i++ {
		if err := l.RecordDailyNAV(q, p, 50_000); err != nil {
			t.Fatalf("RecordDailyNAV() error = %v", err)
		}
	}

	rows := readCSV(t, filepath.Join(l.Dir(), NAVFile))
	if len(rows) != 4 {
		t.Fatalf("NAV ledger has %d rows, want header + 3", len(rows))
	}
	headers := 0
	for _, row := range rows {
		if row[0] == "date" {
			headers++
		}
	}
	if headers != 1 {
		t.Errorf("NAV ledger has %d header rows, want exactly 1", headers)
	}
}

func TestLedger_RecordDailyNAV(t *testing.T) {
	l := NewLedger(t.TempDir())
	q, _ := NewQuote(MustParseDate("2026-02-03"), 2000, 25)
	p := Portfolio{Cash: 5000, GoldShares: 15, SilverShares: 800}

	if err := l.RecordDailyNAV(q, p, 50_000); err != nil {
		t.Fatalf("RecordDailyNAV() error = %v", err)
	}

	rows := readCSV(t, filepath.Join(l.Dir(), NAVFile))
	if got, want := strings.Join(rows[0], ","), strings.Join(navHeader, ","); got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
	// total = 5000 + 15*2000 + 800*25 = 55000, pnl = 5000, pnl_pct = 0.1
	want := []string{
		"2026-02-03", "2000.000000", "25.000000", "5000.00", "15.000000",
		"800.000000", "30000.00", "20000.00", "55000.00", "5000.00",
		"0.100000", "0.545455", "0.363636", "0.090909",
	}
	if got := strings.Join(rows[1], ","); got != strings.Join(want, ",") {
		t.Errorf("row = %q, want %q", got, strings.Join(want, ","))
	}
}

func TestLedger_ZeroTotalWeights(t *testing.T) {
	l := NewLedger(t.TempDir())
	q, _ := NewQuote(MustParseDate("2026-02-03"), 2000, 25)

	// Empty portfolio: weights must default to 0 instead of dividing by zero.
	if err := l.RecordDailyNAV(q, Portfolio{}, 0); err != nil {
		t.Fatalf("RecordDailyNAV() error = %v", err)
	}
	rows := readCSV(t, filepath.Join(l.Dir(), NAVFile))
	for _, i := range []int{10, 11, 12, 13} { // pnl_pct and the three weights
		if got := rows[1][i]; got != "0.000000" {
			t.Errorf("column %d = %q, want %q", i, got, "0.000000")
		}
	}
}
