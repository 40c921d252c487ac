package entities

import "time"

// CredentialName is the fixed key under which the active gateway credential
// is stored. Exactly one credential is active at a time.
const CredentialName = "mp_token"

// Credential is the bearer token authorizing payment gateway calls. It is
// persisted in the credential store, loaded on demand, overwritable and
// revocable; the checkout core only ever consumes it as input.

type Credential struct {
	Name        string    `json:"name"`
	AccessToken string    `json:"access_token"`
	UpdatedAt   time.Time `json:"updated_at"`
}
