package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnreachable indicates the remote API could not be reached at the
	// transport level (DNS failure, refused connection, timeout).
	ErrUnreachable = errors.New("apiclient.unreachable")

	// ErrInvalidPayload indicates the remote API returned a response that
	// could not be decoded into the expected shape.
	ErrInvalidPayload = errors.New("apiclient.invalid_payload")

	// ErrMissingToken indicates an authenticated call was attempted without
	// a bearer token.
	ErrMissingToken = errors.New("apiclient.missing_token")
)

// APIError represents a non-success HTTP response from the remote API, with
// the best-effort message extracted from its body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, http.StatusText(e.Status))
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with a 401 status.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
