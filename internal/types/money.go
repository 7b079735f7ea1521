package types

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places monetary strings are written
// with.
const MoneyPlaces = 2

// ParseMoney parses a decimal string such as "12.50".
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	return decimal.NewFromString(s)
}

// FormatMoney rounds half away from zero and writes two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return d.Round(MoneyPlaces).StringFixed(MoneyPlaces)
}

// MustMoney parses a literal amount and panics if it is malformed. It is
// meant for package-level catalogue prices.
func MustMoney(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
