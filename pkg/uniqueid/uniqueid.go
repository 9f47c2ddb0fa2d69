package uniqueid

import "github.com/google/uuid"

// New returns a random version 4 UUID in canonical lowercase form, e.g.
// "3b241101-e2bb-4255-8caf-4136c566a962". The version nibble is always 4
// and the variant nibble is one of 8, 9, a or b.
func New() string {
	return uuid.NewString()
}
