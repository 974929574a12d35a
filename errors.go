package fiadoc

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic codes that describe the category of error.
// The HTTP transport maps them to status codes at the boundary.
const (
	EINVALID  = "invalid"  // bad or missing caller input
	ETIMEOUT  = "timeout"  // portal unreachable or readiness selector never appeared
	EUPSTREAM = "upstream" // download target unreachable or returned non-success
	EINTERNAL = "internal" // anything else
)

// Error represents an application-specific error. Errors can be unwrapped by
// the caller to extract the code and a human-readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("fiadoc error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
