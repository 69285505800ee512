package shared

import "fmt"

// Error is a request-scoped failure carrying the HTTP status it should
// surface as. Handlers return it up the call chain; the httpx boundary
// converts it to the JSON error body.
type Error struct {
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

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error with a status and user-facing message.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// WrapError builds an Error that keeps the underlying cause.
func WrapError(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}
