package bullion

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DailyExportFile is the per-day portfolio file consumed by the reporting
// dashboard. It is a distinct export derived from the NAV ledger, not the
// ledger itself.
const DailyExportFile = "portfolio_daily.csv"

var dailyExportHeader = []string{"Date", "total_value", "cash", "gold_value", "silver_value"}

// ExportDaily derives the dashboard file from the NAV ledger: one row per
// recorded day with the date, total value, cash and per-asset values, sorted
// by date. The export is rewritten from scratch on every call.
func (l *Ledger) ExportDaily() error {
	navPath := filepath.Join(l.dir, NAVFile)
	f, err := os.Open(navPath)
	if err != nil {
		return fmt.Errorf("could not open NAV ledger %q, run a day first: %w", navPath, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("could not read NAV ledger %q: %w", navPath, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("NAV ledger %q is empty", navPath)
	}

	// Resolve columns by name so the export survives future NAV columns.
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}
	for _, name := range []string{"date", "total_value", "cash", "gold_value", "silver_value"} {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("NAV ledger %q is missing column %q", navPath, name)
		}
	}

	type dailyRow struct {
		on    Date
		cells []string
	}
	daily := make([]dailyRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		on, err := ParseDate(row[index["date"]])
		if err != nil {
			return fmt.Errorf("NAV ledger %q has an unparseable date: %w", navPath, err)
		}
		daily = append(daily, dailyRow{on: on, cells: []string{
			row[index["date"]],
			row[index["total_value"]],
			row[index["cash"]],
			row[index["gold_value"]],
			row[index["silver_value"]],
		}})
	}
	slices.SortStableFunc(daily, func(a, b dailyRow) int {
		return strings.Compare(a.on.String(), b.on.String())
	})

	outPath := filepath.Join(l.dir, DailyExportFile)
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("could not create export file %q: %w", outPath, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(dailyExportHeader); err != nil {
		return fmt.Errorf("could not write export header to %q: %w", outPath, err)
	}
	for _, row := range daily {
		if err := w.Write(row.cells); err != nil {
			return fmt.Errorf("could not write export row to %q: %w", outPath, err)
		}
	}
	w.Flush()
	return w.Error()
}
