package schematic

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes schematic errors.
type ErrorCode string

const (
	// CodePrecondition indicates a structural precondition of the hierarchy
	// did not hold, such as redirecting to the parent of a root.
	CodePrecondition ErrorCode = "PRECONDITION_FAILED"

	// CodeUnsupportedShape indicates a value cannot be composed field by
	// field. Raised when building a schematic, never while instantiating one.
	CodeUnsupportedShape ErrorCode = "UNSUPPORTED_SHAPE"
)

// Error is the error type returned by this package. Combinators pass it
// through unchanged.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrNoParent is returned by Parent when the current entity is the root.
var ErrNoParent = &Error{
	Code:    CodePrecondition,
	Message: "entity does not have parent",
}

// IsPrecondition reports whether err is a structural precondition failure.
func IsPrecondition(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == CodePrecondition
	}
	return false
}

func unsupportedShape(format string, args ...any) *Error {
	return &Error{
		Code:    CodeUnsupportedShape,
		Message: fmt.Sprintf(format, args...),
	}
}
