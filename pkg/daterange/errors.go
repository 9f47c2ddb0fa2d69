package daterange

import "errors"

// ErrUnknownPeriod is returned for period names outside the supported set.
var ErrUnknownPeriod = errors.New("daterange: unknown period")
