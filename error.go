package routa

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is an error code that mirrors the http status codes. Handlers attach a
// code to an error to make it client-facing: the dispatcher sends the code as
// the response status and the error message verbatim as the body.
type Code int

const (
	CodeUnknown               Code = 0
	CodeBadRequest            Code = http.StatusBadRequest            // RFC 9110, 15.5.1
	CodeUnauthorized          Code = http.StatusUnauthorized          // RFC 9110, 15.5.2
	CodeForbidden             Code = http.StatusForbidden             // RFC 9110, 15.5.4
	CodeNotFound              Code = http.StatusNotFound              // RFC 9110, 15.5.5
	CodeMethodNotAllowed      Code = http.StatusMethodNotAllowed      // RFC 9110, 15.5.6
	CodeRequestTimeout        Code = http.StatusRequestTimeout        // RFC 9110, 15.5.9
	CodeConflict              Code = http.StatusConflict              // RFC 9110, 15.5.10
	CodeRequestEntityTooLarge Code = http.StatusRequestEntityTooLarge // RFC 9110, 15.5.14
	CodeUnsupportedMediaType  Code = http.StatusUnsupportedMediaType  // RFC 9110, 15.5.16
	CodeUnprocessableEntity   Code = http.StatusUnprocessableEntity   // RFC 9110, 15.5.21
	CodeTooManyRequests       Code = http.StatusTooManyRequests       // RFC 6585, 4
	CodeInternalServerError   Code = http.StatusInternalServerError   // RFC 9110, 15.6.1
	CodeNotImplemented        Code = http.StatusNotImplemented        // RFC 9110, 15.6.2
	CodeBadGateway            Code = http.StatusBadGateway            // RFC 9110, 15.6.3
	CodeServiceUnavailable    Code = http.StatusServiceUnavailable    // RFC 9110, 15.6.4
	CodeGatewayTimeout        Code = http.StatusGatewayTimeout        // RFC 9110, 15.6.5
)

// Error describes an http error with a client-facing message. Unlike plain
// errors it is never masked by the dispatcher: the message travels to the
// client as the response body, whatever the code. Errors without a code are
// logged and replaced by a generic 500 instead.
type Error struct {
	code Code
	err  error
}

// NewError inits a new error given the error code.
func NewError(c Code, underlying error) *Error {
	return &Error{c, underlying}
}

// Errorf is a convenience constructor formatting the message in place.
func Errorf(c Code, format string, args ...any) *Error {
	return &Error{c, fmt.Errorf(format, args...)}
}

func (e *Error) Code() Code { return e.code }

// Error returns the underlying message verbatim, without a status-text
// prefix: this string is what ends up as the response body.
func (e *Error) Error() string { return e.err.Error() }

// Unwrap exposes the underlying error to errors.Is/As chains.
func (e *Error) Unwrap() error { return e.err }

// CodeOf returns the error's status code if it is or wraps an [*Error] and
// [CodeUnknown] otherwise.
func CodeOf(err error) Code {
	if herr, ok := asError(err); ok {
		return herr.Code()
	}

	return CodeUnknown
}

// asError uses errors.As to unwrap any error and look for an *Error.
func asError(err error) (*Error, bool) {
	var herr *Error
	ok := errors.As(err, &herr)

	return herr, ok
}
