package matching

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers.
const (
	CodeInvalidArgument = "invalid-argument"
	CodeUnauthenticated = "unauthenticated"
	CodeInternal        = "internal"
)

// MatchError is a typed error carrying one of the codes above.
type MatchError struct {
	Code    string
	Message string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidArgument(msg string) error {
	return &MatchError{Code: CodeInvalidArgument, Message: msg}
}

func NewUnauthenticated(msg string) error {
	return &MatchError{Code: CodeUnauthenticated, Message: msg}
}

func NewInternal(msg string) error {
	return &MatchError{Code: CodeInternal, Message: msg}
}

// CodeOf extracts the match error code from err, defaulting to internal for
// untyped errors.
func CodeOf(err error) string {
	var me *MatchError
	if errors.As(err, &me) {
		return me.Code
	}
	return CodeInternal
}
