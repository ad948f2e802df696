package bullion

import "fmt"

// Asset identifies one of the two tracked instruments.
type Asset string

const (
	Gold   Asset = "GOLD"
	Silver Asset = "SILVER"
)

// Quote holds the externally observed prices for one trading day.
// A Quote is immutable once constructed.
type Quote struct {
	Date        Date
	GoldPrice   float64 // price per share/unit of the gold instrument
	SilverPrice float64 // price per share/unit of the silver instrument
}

// NewQuote builds the Quote for one trading day. Both prices must be
// strictly positive.
func NewQuote(on Date, goldPrice, silverPrice float64) (Quote, error) {
	q := Quote{Date: on, GoldPrice: goldPrice, SilverPrice: silverPrice}
	if err := q.Validate(); err != nil {
		return Quote{}, err
	}
	return q, nil
}

// Validate checks the Quote invariant: both prices strictly positive.
func (q Quote) Validate() error {
	if q.GoldPrice <= 0 {
		return errInvalid(fmt.Sprintf("gold price must be positive, got %v", q.GoldPrice))
	}
	if q.SilverPrice <= 0 {
		return errInvalid(fmt.Sprintf("silver price must be positive, got %v", q.SilverPrice))
	}
	return nil
}

// Price returns the quoted price for the given asset.
func (q Quote) Price(asset Asset) float64 {
	if asset == Silver {
		return q.SilverPrice
	}
	return q.GoldPrice
}
