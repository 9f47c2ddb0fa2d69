// Package coupon generates random coupon codes from a configurable
// character-class policy.
//
// A policy selects which character classes (digits, uppercase, lowercase,
// special) make up the candidate alphabet, the code length, and an optional
// prefix and suffix:
//
//	code, err := coupon.Generate(coupon.Options{
//	    Length:           10,
//	    IncludeNumbers:   true,
//	    IncludeUppercase: true,
//	    Prefix:           "SALE-",
//	})
//	// code == "SALE-7K2M9QX4Tx..." (10 random chars after the prefix)
//
// Selecting no class at all is the single configuration error the package
// reports, as ErrNoCharacterClass. Whitespace is stripped from the final
// code so prefixes and suffixes cannot introduce it.
//
// Options carries env tags, so a site-wide policy can be loaded once via
// the config package and reused for every code.
package coupon
