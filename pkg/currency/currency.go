package currency

import (
	"fmt"
	"strings"
)

// symbols maps ISO 4217 currency codes to their display symbols. The table
// is fixed: codes outside it are reported as unknown rather than rendered
// with a placeholder.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"KRW": "₩",
	"RUB": "₽",
	"TRY": "₺",
	"NGN": "₦",
	"PHP": "₱",
	"THB": "฿",
	"VND": "₫",
	"ILS": "₪",
	"UAH": "₴",
	"AUD": "A$",
	"CAD": "C$",
	"HKD": "HK$",
	"NZD": "NZ$",
	"SGD": "S$",
	"CHF": "CHF",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"PLN": "zł",
	"BRL": "R$",
	"MXN": "Mex$",
	"ZAR": "R",
}

// Symbol returns the display symbol for an ISO 4217 currency code. The
// lookup is case-insensitive and ignores surrounding whitespace. Unknown
// codes return ErrUnknownCurrency and an empty symbol.
func Symbol(code string) (string, error) {
	symbol, ok := symbols[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return "", ErrUnknownCurrency
	}
	return symbol, nil
}

// MustSymbol is like Symbol but panics on unknown codes. Intended for
// static code literals known at compile time.
func MustSymbol(code string) string {
	symbol, err := Symbol(code)
	if err != nil {
		panic(fmt.Sprintf("currency: unknown code %q", code))
	}
	return symbol
}

// Format renders an amount prefixed with the currency symbol, e.g.
// Format(19.99, "USD") == "$19.99". Unknown codes return ErrUnknownCurrency.
func Format(amount float64, code string) (string, error) {
	symbol, err := Symbol(code)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%.2f", symbol, amount), nil
}
