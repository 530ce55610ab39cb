// Package money holds the currency arithmetic used by loaders and
// injectors. Everything goes through decimal with half-up rounding to two
// places; binary floats never reach a currency column.
package money

import "github.com/shopspring/decimal"

// Round2 rounds to two decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FromFloat converts a generator-produced float into a rounded amount.
// This is the only place a float enters the money domain.
func FromFloat(f float64) decimal.Decimal {
	return Round2(decimal.NewFromFloat(f))
}

// Cents builds an amount from an integer number of cents.
func Cents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

// Pct returns amount × pct/100, rounded.
func Pct(amount decimal.Decimal, pct int64) decimal.Decimal {
	return Round2(amount.Mul(decimal.New(pct, -2)))
}

// Nights returns rate × nights, rounded.
func Nights(rate decimal.Decimal, nights int) decimal.Decimal {
	return Round2(rate.Mul(decimal.NewFromInt(int64(nights))))
}
