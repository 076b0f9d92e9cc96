package session

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Start signs in against the backend and stores the session.
	Start(ctx context.Context, input StartInput) (StartOutput, error)

	// Current reports the stored session. Absent or malformed data means signed out.
	Current(ctx context.Context) (Session, bool)

	// Describe returns the display view of the stored session.
	Describe(ctx context.Context) CurrentOutput

	// Logout clears the stored session.
	Logout(ctx context.Context) error

	// Token returns the stored auth token or ErrNotSignedIn.
	Token(ctx context.Context) (string, error)

	// CurrentUserKey resolves the checklist partition of the signed-in user.
	CurrentUserKey(ctx context.Context) (string, bool)
}
