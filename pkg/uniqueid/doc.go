// Package uniqueid generates random identifiers for client-side records,
// upload names and correlation keys.
//
//	id := uniqueid.New() // "3b241101-e2bb-4255-8caf-4136c566a962"
//
// Identifiers are standard version 4 UUIDs; the validator package's UUID
// rule accepts everything this package produces.
package uniqueid
