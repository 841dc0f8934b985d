package models

import "time"

// Account is a registered identity. CredentialRecord holds the encoded
// salt and derived hash, never the password itself.
type Account struct {
	ID               string
	Username         string
	CredentialRecord string
	CreatedAt        time.Time
}
