package landing

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	currencySymbol     = "$"
	currencySpace      = "\u00a0"
	thousandsSeparator = "."
)

// FormatPrice renders a price as Colombian pesos without decimals, the way
// es-CO formats COP: "110000000" -> "$\u00a0110.000.000" with a no-break
// space after the symbol. Everything but digits is dropped first; a price with
// no digits renders as "$0".
func FormatPrice(price string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, price)

	amount, err := decimal.NewFromString(digits)
	if err != nil {
		return currencySymbol + "0"
	}

	return currencySymbol + currencySpace + groupThousands(amount.Round(0).String())
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandsSeparator)
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
