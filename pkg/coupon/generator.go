package coupon

import (
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Character classes available for the candidate alphabet.
const (
	digits           = "0123456789"
	uppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	specialChars     = "!@#$%^&*"
)

var (
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	mu  sync.Mutex
)

// Generate produces a random coupon code according to opts: Length
// characters drawn uniformly from the union of the enabled character
// classes, wrapped in Prefix and Suffix, with all whitespace stripped from
// the result. Codes do not need to survive offline attacks, so a seeded
// math/rand source is sufficient.
//
// Returns ErrNoCharacterClass when every Include* flag is false.
func Generate(opts Options) (string, error) {
	alphabet := opts.alphabet()
	if alphabet == "" {
		return "", ErrNoCharacterClass
	}

	length := opts.Length
	if length <= 0 {
		length = DefaultLength
	}

	body := make([]byte, length)

	mu.Lock()
	for i := range body {
		body[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	mu.Unlock()

	code := opts.Prefix + string(body) + opts.Suffix

	return stripWhitespace(code), nil
}

// stripWhitespace removes every whitespace rune, including interior ones
// smuggled in via prefix or suffix.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
