package bullion

import "fmt"

// Trade execution: four operations, symmetric across the two instruments.
// Each validates its inputs, checks sufficiency within Epsilon, and mutates
// the portfolio in place. No fee is charged (fees are reserved at zero) and
// no I/O is performed; recording is the day runner's job.

// BuyGold converts cashAmount dollars into gold shares at q.GoldPrice.
func (p *Portfolio) BuyGold(q Quote, cashAmount float64) error {
	return p.buy(Gold, q.GoldPrice, cashAmount)
}

// SellGold converts shares of gold into cash proceeds at q.GoldPrice.
func (p *Portfolio) SellGold(q Quote, shares float64) error {
	return p.sell(Gold, q.GoldPrice, shares)
}

// BuySilver converts cashAmount dollars into silver shares at q.SilverPrice.
func (p *Portfolio) BuySilver(q Quote, cashAmount float64) error {
	return p.buy(Silver, q.SilverPrice, cashAmount)
}

// SellSilver converts shares of silver into cash proceeds at q.SilverPrice.
func (p *Portfolio) SellSilver(q Quote, shares float64) error {
	return p.sell(Silver, q.SilverPrice, shares)
}

func (p *Portfolio) buy(asset Asset, price, cashAmount float64) error {
	if cashAmount <= 0 {
		return errInvalid(fmt.Sprintf("cash amount must be > 0, got %v", cashAmount))
	}
	if price <= 0 {
		return errInvalid(fmt.Sprintf("%s price must be positive, got %v", asset, price))
	}
	if p.Cash+Epsilon < cashAmount {
		return fmt.Errorf("%w to buy %s: have %v, want %v", ErrInsufficientFunds, asset, p.Cash, cashAmount)
	}

	shares := cashAmount / price
	p.Cash -= cashAmount
	if asset == Silver {
		p.SilverShares += shares
	} else {
		p.GoldShares += shares
	}
	return nil
}

func (p *Portfolio) sell(asset Asset, price, shares float64) error {
	if shares <= 0 {
		return errInvalid(fmt.Sprintf("shares must be > 0, got %v", shares))
	}
	if price <= 0 {
		return errInvalid(fmt.Sprintf("%s price must be positive, got %v", asset, price))
	}
	held := p.GoldShares
	if asset == Silver {
		held = p.SilverShares
	}
	if held+Epsilon < shares {
		return fmt.Errorf("%w to sell %s: have %v, want %v", ErrInsufficientShares, asset, held, shares)
	}

	proceeds := shares * price
	if asset == Silver {
		p.SilverShares -= shares
	} else {
		p.GoldShares -= shares
	}
	p.Cash += proceeds
	return nil
}
