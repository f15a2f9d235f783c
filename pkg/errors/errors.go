// Package errors provides the typed application errors returned by the
// gateway, each carrying the HTTP status it maps to.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard error functions
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// Error is a typed application error with an HTTP status code.
type Error struct {
	// Kind is the error category, e.g. "InvalidPublicKey"
	Kind string `json:"kind"`
	// Message is the human readable description
	Message string `json:"message"`

	status int
	cause  error
}

var _ error = (*Error)(nil)

// Error implements error
func (e *Error) Error() string {
	str := e.Message
	if e.cause != nil {
		str += fmt.Sprintf(" (%s)", e.cause)
	}
	return str
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// StatusCode returns the HTTP status this error maps to
func (e *Error) StatusCode() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

// Cause attaches a wrapped cause to the error
func (e *Error) Cause(err error) *Error {
	c := *e
	c.cause = err
	return &c
}

func newError(kind string, status int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		status:  status,
	}
}

// Validation reports a failed request precondition (missing field, zero amount).
func Validation(format string, args ...interface{}) *Error {
	return newError("ValidationError", http.StatusBadRequest, format, args...)
}

// InvalidPublicKey reports a string that does not parse as a base58 Solana public key.
func InvalidPublicKey(key string) *Error {
	return newError("InvalidPublicKey", http.StatusBadRequest, "invalid public key: %s", key)
}

// InvalidSecretKey reports a secret that is not a base58-encoded 64-byte keypair.
func InvalidSecretKey(format string, args ...interface{}) *Error {
	return newError("InvalidSecretKey", http.StatusBadRequest, format, args...)
}

// InvalidSignature reports signature material that is not 64 bytes of Ed25519.
func InvalidSignature(format string, args ...interface{}) *Error {
	return newError("InvalidSignature", http.StatusBadRequest, format, args...)
}

// Base58Decode reports undecodable base58 input.
func Base58Decode(err error) *Error {
	return newError("Base58DecodeError", http.StatusBadRequest, "failed to decode base58").Cause(err)
}

// Base64Decode reports undecodable base64 input.
func Base64Decode(err error) *Error {
	return newError("Base64DecodeError", http.StatusBadRequest, "failed to decode base64").Cause(err)
}

// TokenOperation reports an instruction-build failure inside the SDK.
func TokenOperation(err error) *Error {
	return newError("TokenOperationFailed", http.StatusInternalServerError, "token operation failed").Cause(err)
}

// StatusOf maps an error to its HTTP status, defaulting to 500 for
// errors that carry no status of their own.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}
