package sdk

import "time"

// Credentials is the persisted authentication state. Only the token is
// authoritative; the identity is always re-derived from it via /users/me.
type Credentials struct {
	Token      string    `json:"access_token"`
	TokenType  string    `json:"token_type"`
	ObtainedAt time.Time `json:"obtained_at,omitempty"`
}

// CredentialStore persists credentials across process restarts. The file
// store in cmd/crmctl/internal/auth is the standard implementation;
// tests substitute in-memory stores.
//
// LoadCredentials returns ErrNoCredentials when nothing is persisted.
type CredentialStore interface {
	SaveCredentials(credentials *Credentials) error
	LoadCredentials() (*Credentials, error)
	DeleteCredentials() error
}
