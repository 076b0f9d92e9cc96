package checklist

import "errors"

var (
	// ErrPersistFailed is returned when the collection could not be written.
	// It is non-fatal: the stored collection is left as it was.
	ErrPersistFailed = errors.New("failed to persist checklist")
)
