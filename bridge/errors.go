package bridge

import "net/http"

// Kind classifies relay failures so the HTTP layer can map each one to the
// most specific status code.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidInput marks a request missing required fields; no upstream
	// traffic is attempted.
	KindInvalidInput
	// KindMisconfigured marks a call with no upstream URL available from
	// either the request or process configuration.
	KindMisconfigured
	// KindNoActiveSession marks a forwarded call attempted before any login
	// stored a session cookie.
	KindNoActiveSession
	// KindUpstreamRejected marks an upstream error envelope or non-success
	// status; the upstream's own status and message are propagated.
	KindUpstreamRejected
	// KindUpstreamUnavailable marks a transport-level failure reaching the
	// upstream server: timeout, connection refused, malformed reply.
	KindUpstreamUnavailable
)

// Error is the relay failure contract. Details carries upstream-provided
// context when available and is serialized verbatim to the caller.
type Error struct {
	Kind    Kind
	Message string
	Status  int // explicit HTTP status; zero derives one from Kind
	Details interface{}
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the failure to the client-facing status code.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindInvalidInput, KindMisconfigured:
		return http.StatusBadRequest
	case KindNoActiveSession:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// NewInvalidInput creates a new invalid input error
func NewInvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// NewMisconfigured creates a new misconfiguration error
func NewMisconfigured(message string) *Error {
	return &Error{Kind: KindMisconfigured, Message: message}
}

// NewNoActiveSession creates a new no-active-session error
func NewNoActiveSession() *Error {
	return &Error{Kind: KindNoActiveSession, Message: "no active session, login first"}
}

// NewUpstreamRejected creates a new upstream rejection carrying the
// upstream's status
func NewUpstreamRejected(status int, message string, details interface{}) *Error {
	return &Error{Kind: KindUpstreamRejected, Status: status, Message: message, Details: details}
}

// NewUpstreamUnavailable creates a new upstream transport failure
func NewUpstreamUnavailable(message string, details interface{}) *Error {
	return &Error{Kind: KindUpstreamUnavailable, Message: message, Details: details}
}
