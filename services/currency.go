package services

import (
	"fmt"
	"strings"
)

// Currency identifies one of the three currencies a quote can be priced,
// displayed or printed in. TL is the home currency: every stored monetary
// value is TL, the other two exist only at the entry and display boundaries.
type Currency string

const (
	CurrencyTRY Currency = "TL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// ParseCurrency maps a form/storage value to a Currency, defaulting to TL.
func ParseCurrency(s string) Currency {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "USD":
		return CurrencyUSD
	case "EUR":
		return CurrencyEUR
	default:
		return CurrencyTRY
	}
}

// Rates holds the two exchange rates in effect for a quote, expressed as
// "TL per 1 unit of foreign currency". They are captured once and fixed for
// the lifetime of the quote; a reloaded quote keeps its stored rates.
type Rates struct {
	USD float64
	EUR float64
}

// Rate returns the TL-per-unit rate for the given currency (1 for TL).
func (r Rates) Rate(c Currency) float64 {
	switch c {
	case CurrencyUSD:
		return r.USD
	case CurrencyEUR:
		return r.EUR
	default:
		return 1
	}
}

// ConvertFromTRY re-expresses a TL amount in the given display currency by
// dividing by the rate. It is a pure presentation transform: the underlying
// TL figures are never recomputed when the display currency changes.
// A missing or non-positive rate leaves the amount in TL.
func ConvertFromTRY(amount float64, c Currency, r Rates) float64 {
	rate := r.Rate(c)
	if rate <= 0 {
		return amount
	}
	return amount / rate
}

// FormatMoney renders an amount in the locale convention of its currency:
// TL uses dot grouping, comma decimals and a trailing glyph (1.234,56 ₺),
// USD uses comma grouping with a leading glyph ($1,234.56), EUR uses the
// TL-style grouping with a trailing glyph (1.234,56 €).
// Rounding to 2 decimals happens here and only here.
func FormatMoney(amount float64, c Currency) string {
	switch c {
	case CurrencyUSD:
		return "$" + formatGrouped(amount, ",", ".")
	case CurrencyEUR:
		return formatGrouped(amount, ".", ",") + " €"
	default:
		return formatGrouped(amount, ".", ",") + " ₺"
	}
}

// formatGrouped formats amount with 2 decimals, a thousands separator and a
// decimal separator.
func formatGrouped(amount float64, thousandsSep, decimalSep string) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := groupThousands(intPart, thousandsSep) + decimalSep + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts the separator every 3 digits from the right.
func groupThousands(s, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + sep + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + sep + result
}
