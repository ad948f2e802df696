package bullion

import "fmt"

// Defaults for the day-zero allocation, matching the historical 3/5:2/5 split.
const (
	DefaultInitialCash = 50_000.0
	DefaultGoldRatio   = 0.6
	DefaultSilverRatio = 0.4
)

// Epsilon is the sufficiency tolerance for trade execution. It absorbs
// floating-point rounding when a buy or sell exactly exhausts a balance.
// The magnitude is a policy knob, not a proven bound.
const Epsilon = 1e-12

// ratioTolerance bounds the acceptable drift of goldRatio+silverRatio from 1.
const ratioTolerance = 1e-9

// Portfolio is the holdings record at a point in time: free cash plus
// fractional share balances for the two instruments.
//
// A Portfolio has exactly one logical owner at a time. Trade execution
// mutates it in place; every field stays >= 0 (within Epsilon) at every
// observable point, enforced by pre-mutation checks.
type Portfolio struct {
	Cash         float64
	GoldShares   float64
	SilverShares float64
}

// Initialize builds the day-zero Portfolio: initialCash is split between the
// two instruments by ratio and converted to shares at the quoted prices.
// Fractional shares are allowed and no fee is charged, so the resulting
// portfolio has zero cash and a market value equal to initialCash.
//
// It is deterministic and performs no I/O.
func Initialize(q Quote, initialCash, goldRatio, silverRatio float64) (Portfolio, error) {
	if initialCash < 0 {
		return Portfolio{}, errInvalid(fmt.Sprintf("initial cash must be non-negative, got %v", initialCash))
	}
	if err := q.Validate(); err != nil {
		return Portfolio{}, err
	}
	if goldRatio < 0 || silverRatio < 0 {
		return Portfolio{}, errInvalid(fmt.Sprintf("allocation ratios must be non-negative, got %v and %v", goldRatio, silverRatio))
	}
	if sum := goldRatio + silverRatio; sum < 1-ratioTolerance || sum > 1+ratioTolerance {
		return Portfolio{}, errInvalid(fmt.Sprintf("gold ratio + silver ratio must equal 1.0, got %v", sum))
	}

	goldCash := initialCash * goldRatio
	silverCash := initialCash * silverRatio

	p := Portfolio{Cash: 0}
	if goldCash > 0 {
		p.GoldShares = goldCash / q.GoldPrice
	}
	if silverCash > 0 {
		p.SilverShares = silverCash / q.SilverPrice
	}
	return p, nil
}
