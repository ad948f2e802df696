package cmd

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// usd formats a dollar figure for display.
func usd(v float64) string {
	return money.NewFromFloat(v, money.USD).Display()
}

// signedUSD formats a P&L figure with an explicit sign.
func signedUSD(v float64) string {
	if v >= 0 {
		return "+" + usd(v)
	}
	return usd(v)
}
