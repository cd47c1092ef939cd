package shared

import "errors"

var (
	// ErrNotFound indicates a catalog entry that does not exist.
	ErrNotFound = errors.New("resource not found")
)
