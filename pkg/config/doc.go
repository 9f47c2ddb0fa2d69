// Package config loads env-tagged configuration structs from the process
// environment, with optional .env file support for local development.
//
// It exists so that generation policies (coupon code shape, password
// length) and similar knobs can be configured per deployment without
// threading option values through every call site:
//
//	var opts coupon.Options
//	config.MustLoad(&opts)
//	code, err := coupon.Generate(opts)
//
// Each struct type is parsed once per process and cached; Reset clears the
// cache for tests.
package config
