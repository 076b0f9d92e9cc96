package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"trackfit-companion/internal/session"
	"trackfit-companion/pkg/trackfit"
)

// storedSession is the persisted layout under session.StorageKey.
type storedSession struct {
	UserID    trackfit.ID `json:"userId"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	AuthToken string      `json:"authToken"`
}

// Start signs in against the backend and stores the returned session.
func (uc *implUseCase) Start(ctx context.Context, input session.StartInput) (session.StartOutput, error) {
	resp, err := uc.auth.StartSession(ctx, trackfit.StartSessionRequest{
		Name:  strings.TrimSpace(input.Name),
		Email: strings.TrimSpace(input.Email),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Start StartSession: %v", err)
		return session.StartOutput{}, fmt.Errorf("%w: %v", session.ErrStartFailed, err)
	}

	s := session.Session{
		UserID:    resp.UserID.String(),
		Name:      resp.Name,
		Email:     resp.Email,
		AuthToken: resp.AuthToken,
	}

	raw, err := json.Marshal(storedSession{
		UserID:    trackfit.ID(s.UserID),
		Name:      s.Name,
		Email:     s.Email,
		AuthToken: s.AuthToken,
	})
	if err != nil {
		return session.StartOutput{}, fmt.Errorf("%w: %v", session.ErrStoreFailed, err)
	}
	if err := uc.store.Set(ctx, session.StorageKey, string(raw)); err != nil {
		uc.l.Errorf(ctx, "uc.Start Set: %v", err)
		return session.StartOutput{}, fmt.Errorf("%w: %v", session.ErrStoreFailed, err)
	}

	uc.l.Infof(ctx, "Session started for user %s", s.UserID)
	return session.StartOutput{Session: s, View: session.NewView(s)}, nil
}

// Current returns the stored session. Read errors and malformed data mean signed out.
func (uc *implUseCase) Current(ctx context.Context) (session.Session, bool) {
	raw, found, err := uc.store.Get(ctx, session.StorageKey)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Current Get: %v", err)
		return session.Session{}, false
	}
	if !found || raw == "" {
		return session.Session{}, false
	}

	var stored storedSession
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		uc.l.Warnf(ctx, "uc.Current Unmarshal: %v", err)
		return session.Session{}, false
	}

	return session.Session{
		UserID:    stored.UserID.String(),
		Name:      stored.Name,
		Email:     stored.Email,
		AuthToken: stored.AuthToken,
	}, true
}

// Describe returns the display view of the stored session.
func (uc *implUseCase) Describe(ctx context.Context) session.CurrentOutput {
	s, ok := uc.Current(ctx)
	if !ok {
		return session.CurrentOutput{}
	}
	return session.CurrentOutput{SignedIn: true, View: session.NewView(s)}
}

// Logout clears the stored session.
func (uc *implUseCase) Logout(ctx context.Context) error {
	if err := uc.store.Delete(ctx, session.StorageKey); err != nil {
		uc.l.Errorf(ctx, "uc.Logout Delete: %v", err)
		return fmt.Errorf("%w: %v", session.ErrLogoutFailed, err)
	}
	return nil
}

// Token returns the stored auth token.
func (uc *implUseCase) Token(ctx context.Context) (string, error) {
	s, ok := uc.Current(ctx)
	if !ok || s.AuthToken == "" {
		return "", session.ErrNotSignedIn
	}
	return s.AuthToken, nil
}

// CurrentUserKey returns the stored user id, if any. An empty or zero id
// selects the anonymous partition.
func (uc *implUseCase) CurrentUserKey(ctx context.Context) (string, bool) {
	s, ok := uc.Current(ctx)
	if !ok || s.UserID == "" || s.UserID == "0" {
		return "", false
	}
	return s.UserID, true
}
