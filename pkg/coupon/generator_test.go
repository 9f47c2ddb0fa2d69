package coupon_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientkit/pkg/coupon"
)

func TestGenerate(t *testing.T) {
	t.Run("respects length and alphabet", func(t *testing.T) {
		opts := coupon.Options{
			Length:           10,
			IncludeNumbers:   true,
			IncludeUppercase: true,
		}

		for i := 0; i < 50; i++ {
			code, err := coupon.Generate(opts)
			require.NoError(t, err)
			require.Len(t, code, 10)

			for _, r := range code {
				assert.Contains(t, "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", string(r),
					"unexpected character %q in code %s", r, code)
			}
		}
	})

	t.Run("no character class selected", func(t *testing.T) {
		_, err := coupon.Generate(coupon.Options{Length: 10})
		assert.ErrorIs(t, err, coupon.ErrNoCharacterClass)
	})

	t.Run("prefix and suffix are attached", func(t *testing.T) {
		code, err := coupon.Generate(coupon.Options{
			Length:         6,
			IncludeNumbers: true,
			Prefix:         "SALE-",
			Suffix:         "-2026",
		})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(code, "SALE-"), "code: %s", code)
		assert.True(t, strings.HasSuffix(code, "-2026"), "code: %s", code)
		assert.Len(t, code, len("SALE-")+6+len("-2026"))
	})

	t.Run("whitespace is stripped from the result", func(t *testing.T) {
		code, err := coupon.Generate(coupon.Options{
			Length:         4,
			IncludeNumbers: true,
			Prefix:         " SALE \t",
			Suffix:         "\n X ",
		})
		require.NoError(t, err)

		assert.NotContains(t, code, " ")
		assert.NotContains(t, code, "\t")
		assert.NotContains(t, code, "\n")
		assert.True(t, strings.HasPrefix(code, "SALE"))
		assert.True(t, strings.HasSuffix(code, "X"))
	})

	t.Run("non-positive length falls back to default", func(t *testing.T) {
		code, err := coupon.Generate(coupon.Options{IncludeLowercase: true})
		require.NoError(t, err)
		assert.Len(t, code, coupon.DefaultLength)
	})

	t.Run("lowercase and special classes", func(t *testing.T) {
		code, err := coupon.Generate(coupon.Options{
			Length:           20,
			IncludeLowercase: true,
			IncludeSpecial:   true,
		})
		require.NoError(t, err)

		for _, r := range code {
			assert.Contains(t, "abcdefghijklmnopqrstuvwxyz!@#$%^&*", string(r),
				"unexpected character %q in code %s", r, code)
		}
	})

	t.Run("codes differ across calls", func(t *testing.T) {
		opts := coupon.DefaultOptions()
		opts.Length = 16

		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			code, err := coupon.Generate(opts)
			require.NoError(t, err)
			seen[code] = true
		}
		assert.Greater(t, len(seen), 1, "expected distinct codes")
	})
}
