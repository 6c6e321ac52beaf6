// Package money formats minor-unit amounts for display.
package money

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Cents is an amount of US dollars expressed in minor units.
type Cents int64

// MaxAmount is the largest amount accepted as input, $100 billion. Rate
// arithmetic on anything up to it stays well inside int64.
const MaxAmount Cents = 10_000_000_000_000

// Valid reports whether v lies within [0, MaxAmount].
func Valid(v int64) bool {
	return v >= 0 && v <= int64(MaxAmount)
}

// FromDollars converts whole dollars to Cents.
func FromDollars(d int64) Cents {
	return Cents(d * 100)
}

var printer = message.NewPrinter(language.AmericanEnglish)

// String renders the amount the way en-US currency formatting does, e.g. "$1,234.56" or "-$5.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%s.%02d", sign, printer.Sprintf("%d", v/100), v%100)
}

// Format is shorthand for Cents(v).String().
func Format(v int64) string {
	return Cents(v).String()
}

// Percent applies a rate given in basis points, rounding half away from zero.
func (c Cents) Percent(basisPoints int64) Cents {
	v := int64(c) * basisPoints
	if v >= 0 {
		return Cents((v + 5000) / 10000)
	}
	return Cents((v - 5000) / 10000)
}

// FloorPercent applies a rate given in basis points, truncating toward zero.
func (c Cents) FloorPercent(basisPoints int64) Cents {
	return Cents(int64(c) * basisPoints / 10000)
}
