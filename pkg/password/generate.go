package password

import (
	"math/rand"
	"sync"
	"time"
)

// Character classes guaranteed to appear in every generated password. The
// symbol set matches what the validator package's strength rules accept.
const (
	lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	uppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits           = "0123456789"
	symbols          = "@$!%*?&"
)

const allChars = lowercaseLetters + uppercaseLetters + digits + symbols

// MinLength is the smallest password Generate can produce: one character
// from each guaranteed class.
const MinLength = 4

var (
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	mu  sync.Mutex
)

// Config is an env-loadable generation policy for the config package.
type Config struct {
	Length int `env:"PASSWORD_LENGTH" envDefault:"12"`
}

// Generate returns a random password of the requested length containing at
// least one lowercase letter, one uppercase letter, one digit and one
// symbol from @$!%*?&. One character from each class is always placed, the
// remainder is drawn from the combined charset, and the result is shuffled
// so the guaranteed characters land in unpredictable positions.
//
// Lengths below MinLength are raised to MinLength: the four guaranteed
// characters are never truncated.
func Generate(length int) string {
	if length < MinLength {
		length = MinLength
	}

	mu.Lock()
	defer mu.Unlock()

	chars := make([]byte, 0, length)
	chars = append(chars,
		lowercaseLetters[rnd.Intn(len(lowercaseLetters))],
		uppercaseLetters[rnd.Intn(len(uppercaseLetters))],
		digits[rnd.Intn(len(digits))],
		symbols[rnd.Intn(len(symbols))],
	)

	for len(chars) < length {
		chars = append(chars, allChars[rnd.Intn(len(allChars))])
	}

	rnd.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})

	return string(chars)
}
