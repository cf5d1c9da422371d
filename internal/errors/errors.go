package errors

import "errors"

// Error codes for categorizing errors
const (
	ErrConfig    = "CONFIG"
	ErrAnimation = "ANIMATION"
	ErrSequence  = "SEQUENCE"
	ErrData      = "DATA"
	ErrRender    = "RENDER"
)

// Error is a user-facing failure. It renders as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrRender code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrRender,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface. Cause and suggestion each get their
// own indented paragraph under the message.
func (e *Error) Error() string {
	out := "✗ " + e.Message + "\n"
	for _, detail := range e.details() {
		out += "\n  " + detail + "\n"
	}
	return out
}

func (e *Error) details() []string {
	var d []string
	if e.Cause != nil {
		d = append(d, e.Cause.Error())
	}
	if e.Suggestion != "" {
		d = append(d, e.Suggestion)
	}
	return d
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether err wraps an *Error carrying code.
func IsCode(err error, code string) bool {
	var target *Error
	return errors.As(err, &target) && target.Code == code
}
