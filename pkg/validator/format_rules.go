package validator

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// Email regex - permissive by design, rejects whitespace and multiple @
	// but does not attempt full RFC 5322 conformance
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// IPv4 regex - dotted quad with each octet bounded to 0-255
	ipv4Regex = regexp.MustCompile(`^((25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)$`)

	// IPv6 regex - full and abbreviated colon-hex forms, including embedded
	// IPv4 tails and link-local zone indices
	ipv6Regex = regexp.MustCompile(`^(([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}|([0-9a-fA-F]{1,4}:){1,7}:|([0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4}|([0-9a-fA-F]{1,4}:){1,5}(:[0-9a-fA-F]{1,4}){1,2}|([0-9a-fA-F]{1,4}:){1,4}(:[0-9a-fA-F]{1,4}){1,3}|([0-9a-fA-F]{1,4}:){1,3}(:[0-9a-fA-F]{1,4}){1,4}|([0-9a-fA-F]{1,4}:){1,2}(:[0-9a-fA-F]{1,4}){1,5}|[0-9a-fA-F]{1,4}:((:[0-9a-fA-F]{1,4}){1,6})|:((:[0-9a-fA-F]{1,4}){1,7}|:)|fe80:(:[0-9a-fA-F]{0,4}){0,4}%[0-9a-zA-Z]+|::(ffff(:0{1,4})?:)?((25[0-5]|(2[0-4]|1?\d)?\d)\.){3}(25[0-5]|(2[0-4]|1?\d)?\d)|([0-9a-fA-F]{1,4}:){1,4}:((25[0-5]|(2[0-4]|1?\d)?\d)\.){3}(25[0-5]|(2[0-4]|1?\d)?\d))$`)
)

// IsEmail reports whether value looks like an email address.
// The check is intentionally loose: one @, no whitespace, dotted domain.
func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// ValidEmail validates that a string is a valid email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// IsURL reports whether value parses as an absolute URL: a scheme followed
// by either an authority (host) or an opaque part (e.g. mailto:user@host).
func IsURL(value string) bool {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// ValidURL validates that a string is a valid absolute URL.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsURL(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL",
		},
	}
}

// IsIPv4 reports whether value is a strict dotted-quad IPv4 address.
func IsIPv4(value string) bool {
	return ipv4Regex.MatchString(value)
}

// IsIPv6 reports whether value is an IPv6 address in full or abbreviated
// notation.
func IsIPv6(value string) bool {
	return ipv6Regex.MatchString(value)
}

// IsIP reports whether value is a valid IPv4 or IPv6 address.
func IsIP(value string) bool {
	return IsIPv4(value) || IsIPv6(value)
}

// ValidIPv4 validates that a string is a valid IPv4 address.
func ValidIPv4(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsIPv4(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid IPv4 address",
		},
	}
}

// ValidIPv6 validates that a string is a valid IPv6 address.
func ValidIPv6(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsIPv6(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid IPv6 address",
		},
	}
}

// ValidIP validates that a string is a valid IP address (IPv4 or IPv6).
func ValidIP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsIP(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid IP address",
		},
	}
}
