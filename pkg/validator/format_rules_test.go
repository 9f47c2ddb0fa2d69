package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientkit/pkg/validator"
)

func TestIsEmail(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"user@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"1234567890@example.com",
			"email@example-one.com",
			"_______@example.com",
			"email@123.123.123.123",
		}

		for _, email := range validEmails {
			assert.True(t, validator.IsEmail(email), "email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"",
			"invalid-email",
			"plainaddress",
			"@missingdomain.com",
			"missing@domain",
			"spaces @domain.com",
			"two@@domain.com",
			"user@domain com",
		}

		for _, email := range invalidEmails {
			assert.False(t, validator.IsEmail(email), "email should be invalid: %s", email)
		}
	})

	t.Run("rule reports field", func(t *testing.T) {
		err := validator.Apply(validator.ValidEmail("email", "nope"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})
}

func TestIsURL(t *testing.T) {
	t.Run("valid URLs", func(t *testing.T) {
		validURLs := []string{
			"http://example.com",
			"https://example.com",
			"https://www.example.com/path",
			"https://example.com:8080",
			"https://example.com/path?query=value",
			"ftp://files.example.com",
			"mailto:user@example.com",
		}

		for _, u := range validURLs {
			assert.True(t, validator.IsURL(u), "URL should be valid: %s", u)
		}
	})

	t.Run("invalid URLs", func(t *testing.T) {
		invalidURLs := []string{
			"",
			"example.com",
			"/relative/path",
			"//missing-scheme.com",
			"http://",
			"not a url",
		}

		for _, u := range invalidURLs {
			assert.False(t, validator.IsURL(u), "URL should be invalid: %s", u)
		}
	})
}

func TestIsIPv4(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		valid := []string{
			"0.0.0.0",
			"127.0.0.1",
			"192.168.1.1",
			"255.255.255.255",
			"10.0.0.254",
		}

		for _, ip := range valid {
			assert.True(t, validator.IsIPv4(ip), "address should be valid: %s", ip)
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		invalid := []string{
			"",
			"256.1.1.1",
			"1.1.1",
			"1.1.1.1.1",
			"192.168.01.300",
			"abc.def.ghi.jkl",
			"1.1.1.1 ",
		}

		for _, ip := range invalid {
			assert.False(t, validator.IsIPv4(ip), "address should be invalid: %s", ip)
		}
	})
}

func TestIsIPv6(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		valid := []string{
			"2001:0db8:85a3:0000:0000:8a2e:0370:7334",
			"2001:db8:85a3::8a2e:370:7334",
			"::1",
			"::",
			"fe80::1%eth0",
			"::ffff:192.168.1.1",
		}

		for _, ip := range valid {
			assert.True(t, validator.IsIPv6(ip), "address should be valid: %s", ip)
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		invalid := []string{
			"",
			"192.168.1.1",
			"2001:db8:85a3::8a2e:370g:7334",
			"1:2:3:4:5:6:7:8:9",
			"not-an-ip",
		}

		for _, ip := range invalid {
			assert.False(t, validator.IsIPv6(ip), "address should be invalid: %s", ip)
		}
	})
}

func TestIsIP(t *testing.T) {
	assert.True(t, validator.IsIP("192.168.1.1"))
	assert.True(t, validator.IsIP("::1"))
	assert.False(t, validator.IsIP("999.999.999.999"))
	assert.False(t, validator.IsIP(""))
}
