package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to read checklist")
	ErrFailedToDecode = errors.New("failed to decode checklist")
	ErrFailedToEncode = errors.New("failed to encode checklist")
	ErrFailedToSave   = errors.New("failed to save checklist")
)
