package cmd

import (
	"errors"
	"testing"

	"github.com/etnz/bullion"
)

func TestParseTradeArgs(t *testing.T) {
	requests, err := parseTradeArgs([]string{"SELL_GOLD", "5", "buy_silver", "2500"})
	if err != nil {
		t.Fatalf("parseTradeArgs() error = %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("parseTradeArgs() returned %d requests, want 2", len(requests))
	}
	if requests[0].Action != bullion.ActionSellGold || requests[0].Amount != 5 {
		t.Errorf("first request = %+v, want SELL_GOLD 5", requests[0])
	}
	if requests[1].Action != bullion.ActionBuySilver || requests[1].Amount != 2500 {
		t.Errorf("second request = %+v, want BUY_SILVER 2500", requests[1])
	}
}

func TestParseTradeArgs_Errors(t *testing.T) {
	if _, err := parseTradeArgs([]string{"SELL_GOLD"}); err == nil {
		t.Error("odd argument count: error = nil, want pairing failure")
	}
	if _, err := parseTradeArgs([]string{"SHORT_GOLD", "5"}); !errors.Is(err, bullion.ErrUnsupportedAction) {
		t.Error("unknown action: want ErrUnsupportedAction")
	}
	if _, err := parseTradeArgs([]string{"BUY_GOLD", "lots"}); err == nil {
		t.Error("non-numeric amount: error = nil, want parse failure")
	}
}

func TestParseDateFlag(t *testing.T) {
	on, err := parseDateFlag("2026-02-01")
	if err != nil || on != bullion.MustParseDate("2026-02-01") {
		t.Errorf("parseDateFlag(2026-02-01) = %v, %v", on, err)
	}
	if on, err := parseDateFlag(""); err != nil || on.IsZero() {
		t.Errorf("parseDateFlag(empty) = %v, %v, want today", on, err)
	}
	if _, err := parseDateFlag("02/01/2026"); err == nil {
		t.Error("parseDateFlag(02/01/2026) error = nil, want parse failure")
	}
}
