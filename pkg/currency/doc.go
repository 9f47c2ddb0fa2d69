// Package currency maps ISO 4217 currency codes to display symbols.
//
//	symbol, err := currency.Symbol("EUR") // "€"
//	price, err := currency.Format(19.99, "USD") // "$19.99"
//
// The table is a fixed set of common currencies. Unknown codes are an
// explicit ErrUnknownCurrency, never a placeholder in the output.
package currency
