package shared

import "errors"

var (
	// ErrInvalidArgument indicates a call that violates a precondition.
	ErrInvalidArgument = errors.New("invalid argument")
)
