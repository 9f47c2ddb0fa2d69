package coupon

// DefaultLength is used when Options.Length is not positive.
const DefaultLength = 8

// Options configures coupon code generation. The candidate alphabet is the
// union of the enabled character classes; at least one class must be
// enabled. Prefix and Suffix are attached verbatim around the random body,
// after which all whitespace is stripped from the final code.
//
// The env tags allow a code policy to be loaded from the environment via
// the config package.
type Options struct {
	Length           int    `env:"COUPON_LENGTH" envDefault:"8"`
	IncludeNumbers   bool   `env:"COUPON_INCLUDE_NUMBERS" envDefault:"true"`
	IncludeUppercase bool   `env:"COUPON_INCLUDE_UPPERCASE" envDefault:"true"`
	IncludeLowercase bool   `env:"COUPON_INCLUDE_LOWERCASE" envDefault:"false"`
	IncludeSpecial   bool   `env:"COUPON_INCLUDE_SPECIAL" envDefault:"false"`
	Prefix           string `env:"COUPON_PREFIX"`
	Suffix           string `env:"COUPON_SUFFIX"`
}

// DefaultOptions returns the default generation policy: 8 characters drawn
// from digits and uppercase letters.
func DefaultOptions() Options {
	return Options{
		Length:           DefaultLength,
		IncludeNumbers:   true,
		IncludeUppercase: true,
	}
}

// alphabet builds the candidate character set from the enabled classes.
func (o Options) alphabet() string {
	var chars string
	if o.IncludeNumbers {
		chars += digits
	}
	if o.IncludeUppercase {
		chars += uppercaseLetters
	}
	if o.IncludeLowercase {
		chars += lowercaseLetters
	}
	if o.IncludeSpecial {
		chars += specialChars
	}
	return chars
}
