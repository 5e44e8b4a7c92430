package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP boundary can pick a status code
// without inspecting error strings.
type Kind int

const (
	// KindInternal is any failure that does not fit another kind.
	KindInternal Kind = iota
	// KindBadRequest marks caller-supplied input that failed validation.
	KindBadRequest
	// KindInvalidDate marks a date string that matched no accepted layout.
	// Validators convert it to KindBadRequest before it reaches a handler.
	KindInvalidDate
	// KindMissingCredential means the brapi token is not configured.
	KindMissingCredential
	// KindInvalidCredential means brapi rejected the configured token (HTTP 401).
	KindInvalidCredential
	// KindUpstream is a non-2xx answer or a transport failure from a provider.
	KindUpstream
)

// UnavailableMessage is returned to clients for every credential failure so
// the real cause never leaks.
const UnavailableMessage = "This endpoint is unavailable at the moment. Please try again later."

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindInvalidDate:
		return "invalid_date"
	case KindMissingCredential:
		return "missing_credential"
	case KindInvalidCredential:
		return "invalid_credential"
	case KindUpstream:
		return "upstream_failure"
	default:
		return "internal"
	}
}

// Error is the single error type crossing package boundaries in the gateway.
//
// Fields:
//   - Kind: classification used for status mapping.
//   - Status: HTTP status to answer with (only meaningful for KindUpstream).
//   - Message: client-facing text.
//   - Err: optional underlying cause, kept for logs and errors.Is/As.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the error to the status code the gateway answers with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest, KindInvalidDate:
		return http.StatusBadRequest
	case KindMissingCredential, KindInvalidCredential:
		return http.StatusServiceUnavailable
	case KindUpstream:
		if e.Status >= 400 && e.Status <= 599 {
			return e.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text placed in the error envelope.
func (e *Error) PublicMessage() string {
	switch e.Kind {
	case KindMissingCredential, KindInvalidCredential:
		return UnavailableMessage
	case KindInternal:
		if e.Message == "" {
			return http.StatusText(http.StatusInternalServerError)
		}
	}
	return e.Message
}

// BadRequest builds a validation failure.
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// InvalidDate builds a date parsing failure naming the rejected input.
func InvalidDate(text string) *Error {
	return &Error{Kind: KindInvalidDate, Status: http.StatusBadRequest, Message: "The following date does not exist: " + text}
}

// MissingCredential reports an unset credential, named by its config key.
func MissingCredential(key string) *Error {
	return &Error{
		Kind:    KindMissingCredential,
		Status:  http.StatusServiceUnavailable,
		Message: fmt.Sprintf("missing required credential %s", key),
	}
}

// InvalidCredential reports a credential rejected by the provider.
func InvalidCredential(provider string, cause error) *Error {
	return &Error{
		Kind:    KindInvalidCredential,
		Status:  http.StatusServiceUnavailable,
		Message: fmt.Sprintf("%s rejected the configured credential", provider),
		Err:     cause,
	}
}

// Upstream reports a provider failure carrying the provider's status.
func Upstream(status int, message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Status: status, Message: message, Err: cause}
}

// Internal wraps an unexpected failure.
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: message, Err: cause}
}

// From extracts an *Error from err, wrapping foreign errors as KindInternal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(http.StatusText(http.StatusInternalServerError), err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
