package coupon

import "errors"

// ErrNoCharacterClass is returned when the options enable no character
// class, leaving the candidate alphabet empty.
var ErrNoCharacterClass = errors.New("coupon: no character class selected")
