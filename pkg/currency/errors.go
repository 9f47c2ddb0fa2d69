package currency

import "errors"

// ErrUnknownCurrency is returned when a currency code is not in the symbol
// table.
var ErrUnknownCurrency = errors.New("currency: unknown currency code")
