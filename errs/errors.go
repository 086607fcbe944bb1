// Package errs defines the error kinds reported by the upload workflow.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind ...
type Kind int

// Error kinds
const (
	KindValidation Kind = iota + 1
	KindConfig
	KindNotFound
	KindDownload
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation error"
	case KindConfig:
		return "config error"
	case KindNotFound:
		return "not found"
	case KindDownload:
		return "download error"
	case KindProtocol:
		return "protocol error"
	default:
		return "unknown error"
	}
}

// Error is returned by every step of the upload workflow which fails for a known reason.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err)
}

// Unwrap ...
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func newf(kind Kind, cause error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Validationf ...
func Validationf(format string, args ...interface{}) error {
	return newf(KindValidation, nil, format, args...)
}

// Configf ...
func Configf(format string, args ...interface{}) error {
	return newf(KindConfig, nil, format, args...)
}

// NotFoundf ...
func NotFoundf(format string, args ...interface{}) error {
	return newf(KindNotFound, nil, format, args...)
}

// Download wraps a transport failure which happened while fetching an artifact.
func Download(cause error, format string, args ...interface{}) error {
	return newf(KindDownload, errors.WithStack(cause), format, args...)
}

// Protocol wraps a malformed response of the publishing tool.
func Protocol(cause error, format string, args ...interface{}) error {
	return newf(KindProtocol, errors.WithStack(cause), format, args...)
}
