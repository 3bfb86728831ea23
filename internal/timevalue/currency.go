package timevalue

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders dollar amounts with locale-aware digit grouping.
// The zero value falls back to plain "$%.2f" output.
type Formatter struct {
	p *message.Printer
}

// NewFormatter builds a Formatter for the given locale tag.
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{p: message.NewPrinter(tag)}
}

// Currency renders v with a dollar sign and exactly two fraction digits.
// Non-finite input renders as "$0.00".
func (f Formatter) Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0.00"
	}
	if f.p == nil {
		return fmt.Sprintf("$%.2f", v)
	}
	return f.p.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

var defaultFormatter = NewFormatter(language.AmericanEnglish)

// FormatCurrency renders v with the default (en-US) formatter.
func FormatCurrency(v float64) string {
	return defaultFormatter.Currency(v)
}
