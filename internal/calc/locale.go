package calc

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var monthNames = [][12]string{
	{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"},
}

// The first tag is the fallback for unsupported languages
var monthMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Indonesian,
})

// MonthName returns the name of the month of t in the language best
// matching tag.
func MonthName(t time.Time, tag language.Tag) string {
	_, index, _ := monthMatcher.Match(tag)
	return monthNames[index][t.Month()-1]
}

// FormatMoney formats an amount with the currency symbol and the number
// format of the language.
func FormatMoney(amount decimal.Decimal, unit currency.Unit, tag language.Tag) string {
	f, _ := amount.Round(2).Float64()
	return message.NewPrinter(tag).Sprintf("%v %.2f", currency.Symbol(unit), f)
}

// CurrencySymbol returns the symbol for an ISO 4217 code. Unknown codes
// are returned unchanged.
func CurrencySymbol(code string, tag language.Tag) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}

	return message.NewPrinter(tag).Sprintf("%v", currency.Symbol(unit))
}

// DefaultCurrency is the currency of the region of tag.
func DefaultCurrency(tag language.Tag) currency.Unit {
	unit, confidence := currency.FromTag(tag)
	if confidence == language.No {
		return currency.USD
	}

	return unit
}
