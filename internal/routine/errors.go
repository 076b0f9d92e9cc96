package routine

import "errors"

var (
	ErrEmptyTitle = errors.New("title is required")
	ErrEmptyID    = errors.New("routine id is required")
)
