package session

import "errors"

var (
	ErrNotSignedIn  = errors.New("You need to sign in first.")
	ErrStartFailed  = errors.New("Unable to start session")
	ErrStoreFailed  = errors.New("failed to store session")
	ErrLogoutFailed = errors.New("failed to clear session")
)
