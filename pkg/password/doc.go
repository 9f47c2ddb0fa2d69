// Package password generates random passwords that always satisfy the
// four-class strength policy: at least one lowercase letter, one uppercase
// letter, one digit and one symbol from the fixed set @$!%*?&.
//
//	pw := password.Generate(12)
//
// The guaranteed characters are placed first and the whole sequence is
// shuffled, so their positions are not predictable. Requested lengths below
// four are raised to four rather than truncating the guarantees.
//
// Generated passwords are meant as user-facing suggestions, not as key
// material: the randomness source is a seeded math/rand generator, not
// crypto/rand.
package password
