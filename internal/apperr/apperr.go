package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the HTTP layer can map it to a status code.
type Kind int

const (
	// KindUnknown is the zero value and means the error carries no kind.
	KindUnknown Kind = iota
	// KindNotFound means a referenced entity does not exist.
	KindNotFound
	// KindConflict means a business rule rejected the operation
	// (full match, duplicate registration, double-booked venue, ...).
	KindConflict
	// KindInvalid means the request itself was malformed.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	case KindUnknown:
		return "unknown"
	}
	return "unknown"
}

// Error is a kinded error value. Business rejections are returned as values,
// never panics, so the enclosing transaction can roll back cleanly.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a kinded error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a kinded error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf unwraps err and returns its kind, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err carries KindNotFound.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsConflict reports whether err carries KindConflict.
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

// IsInvalid reports whether err carries KindInvalid.
func IsInvalid(err error) bool {
	return KindOf(err) == KindInvalid
}
