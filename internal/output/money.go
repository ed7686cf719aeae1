package output

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured
const DefaultCurrency = "USD"

// FormatCurrency renders a decimal amount in the given ISO currency, e.g.
// "$1,250,000.00". Unknown codes fall back to "<code> 1250000.00".
func FormatCurrency(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(code)
	cur := money.GetCurrency(code)
	if cur == nil {
		return code + " " + amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}

// FormatAmount renders a float amount in the given currency
func FormatAmount(amount float64, code string) string {
	return FormatCurrency(decimal.NewFromFloat(amount), code)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatPercent formats a float percentage with two decimals
func FormatPercent(pct float64) string {
	return FormatPercentage(decimal.NewFromFloat(pct))
}

// FormatMillions renders a chart value (already in millions) as "1.23M"
func FormatMillions(v float64) string {
	return fmt.Sprintf("%.2fM", v)
}
