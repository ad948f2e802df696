package bullion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "data"))

	p := Portfolio{Cash: 123.45, GoldShares: 1.5, SilverShares: 800}
	q, _ := NewQuote(MustParseDate("2026-02-05"), 2050.5, 24.75)

	if err := s.Save(p, &q); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, lastQuote, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil || *got != p {
		t.Errorf("Load() portfolio = %+v, want %+v", got, p)
	}
	if lastQuote == nil || *lastQuote != q {
		t.Errorf("Load() quote = %+v, want %+v", lastQuote, q)
	}
}

func TestStore_SaveWithoutQuote(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.Save(Portfolio{Cash: 10}, nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("could not read state file: %v", err)
	}
	if !strings.Contains(string(data), `"last_quote": null`) {
		t.Errorf("state file does not persist a null last_quote:\n%s", data)
	}

	p, q, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p == nil || p.Cash != 10 {
		t.Errorf("Load() portfolio = %+v, want cash 10", p)
	}
	if q != nil {
		t.Errorf("Load() quote = %+v, want nil", q)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	p, q, err := s.Load()
	if p != nil || q != nil || err != nil {
		t.Errorf("Load() on missing file = %v, %v, %v, want nil, nil, nil", p, q, err)
	}
}

func TestStore_MalformedQuoteIsDropped(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"quote not an object", `{"portfolio":{"cash":7},"last_quote":"yesterday"}`},
		{"date missing", `{"portfolio":{"cash":7},"last_quote":{"gold_price":2000,"silver_price":25}}`},
		{"date not a string", `{"portfolio":{"cash":7},"last_quote":{"date":42,"gold_price":2000,"silver_price":25}}`},
		{"date unparseable", `{"portfolio":{"cash":7},"last_quote":{"date":"not-a-date","gold_price":2000,"silver_price":25}}`},
		{"price not a number", `{"portfolio":{"cash":7},"last_quote":{"date":"2026-02-05","gold_price":"2k","silver_price":25}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(t.TempDir())
			if err := os.WriteFile(s.Path(), []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}

			p, q, err := s.Load()
			if err != nil {
				t.Fatalf("Load() error = %v, want graceful degradation", err)
			}
			if q != nil {
				t.Errorf("Load() quote = %+v, want nil", q)
			}
			if p == nil || p.Cash != 7 {
				t.Errorf("Load() portfolio = %+v, want cash 7 kept", p)
			}
		})
	}
}

func TestStore_MissingPortfolioFieldsDefaultToZero(t *testing.T) {
	s := NewStore(t.TempDir())
	body := `{"portfolio":{"gold_shares":2},"last_quote":null}`
	if err := os.WriteFile(s.Path(), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	p, _, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Cash != 0 || p.GoldShares != 2 || p.SilverShares != 0 {
		t.Errorf("Load() portfolio = %+v, want missing fields defaulted to 0", p)
	}
}

func TestStore_UnparseableStateFails(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := os.WriteFile(s.Path(), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Load(); err == nil {
		t.Error("Load() error = nil, want parse failure")
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.Save(Portfolio{Cash: 1}, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(Portfolio{Cash: 2}, nil); err != nil {
		t.Fatal(err)
	}

	p, _, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Cash != 2 {
		t.Errorf("Load() cash = %v, want the overwritten value 2", p.Cash)
	}
}
