package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/clientkit/pkg/password"
	"github.com/dmitrymomot/clientkit/pkg/validator"
)

func TestGenerate(t *testing.T) {
	t.Run("contains every character class", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			pw := password.Generate(8)

			assert.Len(t, pw, 8)
			assert.True(t, strings.ContainsAny(pw, "abcdefghijklmnopqrstuvwxyz"), "missing lowercase: %s", pw)
			assert.True(t, strings.ContainsAny(pw, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"), "missing uppercase: %s", pw)
			assert.True(t, strings.ContainsAny(pw, "0123456789"), "missing digit: %s", pw)
			assert.True(t, strings.ContainsAny(pw, "@$!%*?&"), "missing symbol: %s", pw)
		}
	})

	t.Run("satisfies the validator strength policy", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			pw := password.Generate(10)
			assert.True(t, validator.IsStrongPassword(pw, validator.DefaultPasswordPolicy()), "weak password generated: %s", pw)
		}
	})

	t.Run("short requests floor at the class guarantee", func(t *testing.T) {
		assert.Len(t, password.Generate(0), password.MinLength)
		assert.Len(t, password.Generate(2), password.MinLength)
		assert.Len(t, password.Generate(-5), password.MinLength)
		assert.Len(t, password.Generate(4), 4)
	})

	t.Run("longer lengths are honored", func(t *testing.T) {
		assert.Len(t, password.Generate(32), 32)
	})

	t.Run("passwords differ across calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			seen[password.Generate(16)] = true
		}
		assert.Greater(t, len(seen), 1, "expected distinct passwords")
	})
}
