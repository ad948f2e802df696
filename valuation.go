package bullion

// ValuationSnapshot is the marked-to-market view of a portfolio against one
// day's Quote.
type ValuationSnapshot struct {
	Date        Date
	GoldValue   float64
	SilverValue float64
	Cash        float64
	TotalValue  float64
	PnL         float64 // TotalValue minus the initial invested cash
}

// Value computes the mark-to-market valuation of p against q.
// TotalValue = cash + goldShares*goldPrice + silverShares*silverPrice,
// PnL = TotalValue - initialCash. Pure function, no mutation, no I/O.
func Value(p Portfolio, q Quote, initialCash float64) (ValuationSnapshot, error) {
	if err := q.Validate(); err != nil {
		return ValuationSnapshot{}, err
	}

	goldValue := p.GoldShares * q.GoldPrice
	silverValue := p.SilverShares * q.SilverPrice
	total := goldValue + silverValue + p.Cash

	return ValuationSnapshot{
		Date:        q.Date,
		GoldValue:   goldValue,
		SilverValue: silverValue,
		Cash:        p.Cash,
		TotalValue:  total,
		PnL:         total - initialCash,
	}, nil
}
