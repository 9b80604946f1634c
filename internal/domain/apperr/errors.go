// Package apperr defines the error kinds shared by every domain package.
// Entity packages declare specific *Error values; errors.Is matches both the
// specific value and its kind.
package apperr

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidState        = errors.New("invalid state")
	ErrBusinessRule        = errors.New("business rule violation")
	ErrConfigNotFound      = errors.New("configuration not found")
	ErrInvalidNumericValue = errors.New("invalid numeric value")
)

type Error struct {
	Kind    error
	Code    string
	Message string
}

func New(kind error, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == e.Kind }

// Unwrap exposes the kind so wrapped chains stay inspectable.
func (e *Error) Unwrap() error { return e.Kind }

// Code returns the stable code of the first *Error in err's chain, or "".
func Code(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
