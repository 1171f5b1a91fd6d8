package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidInput marks local validation failures. Calls rejected with
	// this error never reached the network and never mutated any state.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthentication is the uniform "unable to authenticate" failure for
	// login and session restoration. Transient network failures and rejected
	// credentials are deliberately not distinguished; callers that need the
	// underlying cause can unwrap to *APIError.
	ErrAuthentication = errors.New("unable to authenticate")

	// ErrNoCredentials is returned by a CredentialStore when no credentials
	// have been persisted. It means "logged out", not "broken store".
	ErrNoCredentials = errors.New("not logged in")
)

// APIError is a non-2xx response from the CRM API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, msg)
}

// IsUnauthorized reports whether err is an API rejection of the bearer
// token (HTTP 401).
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
