// Package currency maps countries to currencies and formats amounts.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Default is used for unknown countries.
const Default = "USD"

var byCountry = map[string]string{
	"ID": "IDR",
	"US": "USD",
	"IN": "INR",
	"SG": "SGD",
	"MY": "MYR",
	"JP": "JPY",
	"KR": "KRW",
	"CN": "CNY",
	"EU": "EUR",
	"AD": "EUR",
	"AT": "EUR",
	"BE": "EUR",
	"DE": "EUR",
	"FI": "EUR",
	"FR": "EUR",
	"IE": "EUR",
	"IT": "EUR",
	"PT": "EUR",
	"ES": "EUR",
	"AU": "AUD",
	"GB": "GBP",
}

var symbols = map[string]string{
	"IDR": "Rp",
	"USD": "$",
	"EUR": "€",
	"JPY": "¥",
	"KRW": "₩",
	"SGD": "$",
	"CNY": "¥",
	"INR": "₹",
	"MYR": "RM",
	"AUD": "$",
	"GBP": "£",
}

// Currency is a supported currency.
type Currency struct {
	Code   string `json:"code" example:"EUR"`  // ISO 4217 code
	Symbol string `json:"symbol" example:"€"` // Symbol used when formatting amounts
}

// ForCountry returns the currency for an ISO 3166-1 alpha-2 country code.
func ForCountry(countryCode string) string {
	if code, ok := byCountry[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return code
	}
	return Default
}

// Symbol returns the symbol for the currency, "$" for unknown ones.
func Symbol(code string) string {
	if s, ok := symbols[strings.ToUpper(code)]; ok {
		return s
	}
	return "$"
}

// Supported returns all supported currencies, sorted by code.
func Supported() []Currency {
	codes := make([]string, 0, len(symbols))
	for code := range symbols {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	currencies := make([]Currency, 0, len(codes))
	for _, code := range codes {
		currencies = append(currencies, Currency{Code: code, Symbol: symbols[code]})
	}
	return currencies
}

// Valid reports whether code is a well-formed ISO 4217 code that is supported.
func Valid(code string) bool {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return false
	}

	_, ok := symbols[unit.String()]
	return ok
}

var printer = message.NewPrinter(language.English)

// Format formats the amount in English notation without fraction digits,
// e.g. "-€1,235" for -1234.5 EUR.
func Format(amount decimal.Decimal, code string) string {
	rounded := amount.Round(0)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	digits := printer.Sprint(number.Decimal(rounded.IntPart(), number.MaxFractionDigits(0)))
	return sign + Symbol(code) + digits
}
