package http

import (
	"trackfit-companion/internal/session"
)

// --- Request DTOs ---

type startReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r startReq) toInput() session.StartInput {
	return session.StartInput{Name: r.Name, Email: r.Email}
}

// --- Response DTOs ---

type profileResp struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Initial string `json:"initial"`
	Title   string `json:"title"`
}

func newProfileResp(v session.View) profileResp {
	return profileResp{Name: v.Name, Email: v.Email, Initial: v.Initial, Title: v.Title}
}

type startResp struct {
	UserID  string      `json:"user_id"`
	Profile profileResp `json:"profile"`
}

func (h *handler) newStartResp(out session.StartOutput) startResp {
	return startResp{
		UserID:  out.Session.UserID,
		Profile: newProfileResp(out.View),
	}
}

type currentResp struct {
	SignedIn bool         `json:"signed_in"`
	Profile  *profileResp `json:"profile,omitempty"`
}

func (h *handler) newCurrentResp(out session.CurrentOutput) currentResp {
	if !out.SignedIn {
		return currentResp{}
	}
	p := newProfileResp(out.View)
	return currentResp{SignedIn: true, Profile: &p}
}
