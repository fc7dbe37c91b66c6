package subtrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
)

// Sentinel errors for conditions callers branch on with errors.Is.
var (
	// ErrSessionExpired signals a 401; the bearer token is no longer accepted
	// and the user must re-authenticate.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotFound signals a 404 for the addressed subscription.
	ErrNotFound = errors.New("subscription not found")

	// ErrNotDeleted signals a 400 from the restore endpoint: the record was
	// never deleted, so there is nothing to restore.
	ErrNotDeleted = errors.New("subscription is not deleted")
)

// ConflictError carries a 409 message verbatim.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return "conflict"
	}
	return e.Message
}

// ValidationError carries a 422 response. Field holds the first field-level
// message when the server reported any.
type ValidationError struct {
	Message string
	Field   string
	Detail  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Detail)
	}
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// APIError covers any remaining non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api returned status %d", e.Status)
}

// TransportError wraps a failure to obtain any response at all. List fetches
// recover from these via the local cache.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err stems from a failure to reach the backend.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// errorEnvelope mirrors the backend's error payload.
type errorEnvelope struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decodeError maps a non-2xx response to the client error taxonomy. The body
// is best-effort: an unreadable or non-JSON body still yields a typed error.
func decodeError(resp *http.Response) error {
	var envelope errorEnvelope
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil {
		_ = json.Unmarshal(body, &envelope)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrSessionExpired
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return &ConflictError{Message: envelope.Error}
	case http.StatusUnprocessableEntity:
		verr := &ValidationError{Message: envelope.Error}
		if len(envelope.Fields) > 0 {
			// Deterministic pick of the "first" field message.
			keys := make([]string, 0, len(envelope.Fields))
			for k := range envelope.Fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			verr.Field = keys[0]
			verr.Detail = envelope.Fields[keys[0]]
		}
		return verr
	}
	return &APIError{Status: resp.StatusCode, Message: envelope.Error}
}
