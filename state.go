package bullion

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
)

// StateFile is the session state snapshot file name inside the data directory.
const StateFile = "portfolio_state.json"

// Store persists the session state snapshot: the latest portfolio plus the
// last known quote. There is exactly one logical record, saved by full
// overwrite, so a session can resume where the previous one left off.
type Store struct {
	dir string
}

// NewStore returns a Store persisting under dir.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Path returns the full path of the snapshot file.
func (s *Store) Path() string { return filepath.Join(s.dir, StateFile) }

// stateFile is the on-disk shape of the snapshot.
type stateFile struct {
	Portfolio statePortfolio `json:"portfolio"`
	LastQuote *stateQuote    `json:"last_quote"`
}

type statePortfolio struct {
	Cash         float64 `json:"cash"`
	GoldShares   float64 `json:"gold_shares"`
	SilverShares float64 `json:"silver_shares"`
}

type stateQuote struct {
	Date        string  `json:"date"`
	GoldPrice   float64 `json:"gold_price"`
	SilverPrice float64 `json:"silver_price"`
}

// Save overwrites the snapshot with p and last. A nil last is persisted as a
// JSON null last_quote.
func (s *Store) Save(p Portfolio, last *Quote) error {
	payload := stateFile{
		Portfolio: statePortfolio{
			Cash:         p.Cash,
			GoldShares:   p.GoldShares,
			SilverShares: p.SilverShares,
		},
	}
	if last != nil {
		payload.LastQuote = &stateQuote{
			Date:        last.Date.String(),
			GoldPrice:   last.GoldPrice,
			SilverPrice: last.SilverPrice,
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal state: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create state directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("could not write state file %q: %w", s.Path(), err)
	}
	return nil
}

// Load reads the snapshot back. It returns (nil, nil, nil) when no snapshot
// exists. The portfolio is parsed with missing numeric fields defaulting to
// 0; a structurally malformed last_quote sub-record is degraded to a nil
// quote rather than failing the whole load.
func (s *Store) Load() (*Portfolio, *Quote, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not read state file %q: %w", s.Path(), err)
	}

	// The snapshot is decoded as a loose document so a damaged quote
	// sub-record cannot take the portfolio down with it.
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("could not parse state file %q: %w", s.Path(), err)
	}

	p := &Portfolio{}
	for _, field := range []struct {
		path string
		dst  *float64
	}{
		{"$.portfolio.cash", &p.Cash},
		{"$.portfolio.gold_shares", &p.GoldShares},
		{"$.portfolio.silver_shares", &p.SilverShares},
	} {
		v, ok := jsonNumber(doc, field.path)
		if !ok {
			return nil, nil, fmt.Errorf("malformed state file %q: %s is not a number", s.Path(), field.path)
		}
		*field.dst = v
	}

	return p, s.loadLastQuote(doc), nil
}

// loadLastQuote extracts the last_quote sub-record, returning nil when it is
// absent, null, or structurally malformed.
func (s *Store) loadLastQuote(doc any) *Quote {
	raw, err := jsonpath.Get("$.last_quote", doc)
	if err != nil || raw == nil {
		return nil
	}

	jdate, err := jsonpath.Get("$.last_quote.date", doc)
	if err != nil {
		log.Printf("warning: dropping last quote from %q: no date", s.Path())
		return nil
	}
	str, ok := jdate.(string)
	if !ok {
		log.Printf("warning: dropping last quote from %q: date is not a string", s.Path())
		return nil
	}
	on, err := ParseDate(str)
	if err != nil {
		log.Printf("warning: dropping last quote from %q: %v", s.Path(), err)
		return nil
	}

	gold, okGold := jsonNumber(doc, "$.last_quote.gold_price")
	silver, okSilver := jsonNumber(doc, "$.last_quote.silver_price")
	if !okGold || !okSilver {
		log.Printf("warning: dropping last quote from %q: prices are not numbers", s.Path())
		return nil
	}

	return &Quote{Date: on, GoldPrice: gold, SilverPrice: silver}
}

// jsonNumber extracts a numeric field from a loose JSON document. An absent
// field defaults to 0; ok is false only when the field is present but not a
// number.
func jsonNumber(doc any, path string) (v float64, ok bool) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, true
	}
	f, isFloat := jval.(float64)
	return f, isFloat
}
