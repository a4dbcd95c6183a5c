// Package money is the single currency formatter for the whole UI:
// summary figures, the what-if impact delta, and chart axis ticks all go
// through it. Locale-fixed, zero decimal places.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders currency amounts as "$1,234" (rounded, grouped,
// no fraction digits).
type Formatter struct {
	p *message.Printer
}

// NewFormatter returns the shared en-US dollar formatter.
func NewFormatter() *Formatter {
	return &Formatter{p: message.NewPrinter(language.AmericanEnglish)}
}

// Amount formats v with a currency symbol and zero decimal places.
func (f *Formatter) Amount(v float64) string {
	if math.Signbit(v) && math.Round(v) != 0 {
		return "-" + f.Amount(math.Abs(v))
	}
	return f.p.Sprintf("$%v", number.Decimal(math.Abs(v), number.MaxFractionDigits(0)))
}

// SignedAmount formats a delta with an explicit sign and reports whether
// it counts as positive. Zero is positive: a what-if that changes nothing
// is not a loss. The magnitude is always the formatted absolute value.
func (f *Formatter) SignedAmount(delta float64) (string, bool) {
	if delta >= 0 {
		return "+" + f.Amount(delta), true
	}
	return "-" + f.Amount(-delta), false
}
