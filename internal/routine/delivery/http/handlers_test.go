package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"trackfit-companion/internal/routine"
	"trackfit-companion/internal/session"
	"trackfit-companion/pkg/log"
	"trackfit-companion/pkg/trackfit"
)

// mockUC is an in-memory routine.UseCase.
type mockUC struct {
	tasks []routine.Task
	err   error
}

func (m *mockUC) List(ctx context.Context) (routine.ListOutput, error) {
	if m.err != nil {
		return routine.ListOutput{}, m.err
	}
	return routine.ListOutput{Tasks: m.tasks, CountLabel: routine.CountLabel(len(m.tasks))}, nil
}

func (m *mockUC) Create(ctx context.Context, input routine.CreateInput) error {
	if m.err != nil {
		return m.err
	}
	if strings.TrimSpace(input.Title) == "" {
		return routine.ErrEmptyTitle
	}
	m.tasks = append(m.tasks, routine.Task{ID: "1", Title: input.Title, TargetDate: input.TargetDate})
	return nil
}

func (m *mockUC) SetCompleted(ctx context.Context, input routine.SetCompletedInput) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.tasks {
		if m.tasks[i].ID == input.ID {
			m.tasks[i].Completed = input.Value
		}
	}
	return nil
}

func (m *mockUC) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.tasks = nil
	return nil
}

type envelope struct {
	ErrorCode int      `json:"error_code"`
	Message   string   `json:"message"`
	Data      listResp `json:"data"`
}

func do(t *testing.T, uc routine.UseCase, method, path, body string) (int, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/routines"), New(log.NewNop(), uc))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return w.Code, env
}

func TestRoutineFlow(t *testing.T) {
	uc := &mockUC{}

	code, env := do(t, uc, http.MethodPost, "/api/v1/routines", `{"title":"Squats","target_date":"2026-10-20"}`)
	if code != http.StatusOK || env.Data.CountLabel != "1 task" {
		t.Fatalf("unexpected create response %d %+v", code, env.Data)
	}
	if env.Data.Tasks[0].Meta != "Target: 2026-10-20" {
		t.Errorf("unexpected meta %q", env.Data.Tasks[0].Meta)
	}

	_, env = do(t, uc, http.MethodPatch, "/api/v1/routines/1/completed", `{"value":true}`)
	if !env.Data.Tasks[0].Completed {
		t.Error("expected task to be completed")
	}

	_, env = do(t, uc, http.MethodDelete, "/api/v1/routines/1", "")
	if env.Data.CountLabel != "0 tasks" {
		t.Errorf("unexpected count label %q", env.Data.CountLabel)
	}
}

func TestRoutineErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		method  string
		path    string
		body    string
		code    int
		message string
	}{
		{"not signed in", session.ErrNotSignedIn, http.MethodGet, "/api/v1/routines", "", http.StatusUnauthorized, "You need to sign in first."},
		{"backend status", &trackfit.APIError{StatusCode: 404, Message: "Routine not found"}, http.MethodDelete, "/api/v1/routines/9", "", http.StatusNotFound, "Routine not found"},
		{"transport", errors.New("dial tcp: refused"), http.MethodGet, "/api/v1/routines", "", http.StatusBadGateway, "Request failed"},
		{"empty title", nil, http.MethodPost, "/api/v1/routines", `{"title":"  "}`, http.StatusBadRequest, routine.ErrEmptyTitle.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, &mockUC{err: tt.err}, tt.method, tt.path, tt.body)
			if code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, code)
			}
			if env.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, env.Message)
			}
		})
	}
}
