package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"trackfit-companion/internal/checklist"
	"trackfit-companion/pkg/kvstore/memory"
	"trackfit-companion/pkg/log"
	"trackfit-companion/pkg/trackfit"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/start", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":42,"name":"Ana","email":"ana@example.com","authToken":"tok"}`))
	})
	mux.HandleFunc("/api/stats/overview", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(trackfit.AuthTokenHeader) != "tok" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"currentStreakDays":2,"routineConsistencyPercent":50,"totalWorkoutsLogged":4,"averageDurationMinutes":30}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T, store *memory.Store) *HTTPServer {
	t.Helper()
	backend := newBackend(t)
	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8090,
		Mode:        gin.TestMode,
		Environment: "test",
		Storage:     store,
		Backend:     trackfit.NewClient(backend.URL+"/api", 5*time.Second),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func call(t *testing.T, srv *HTTPServer, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return w.Code, out
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 1, Storage: memory.New(), Backend: trackfit.NewClient("http://x", time.Second)}},
		{"missing port", Config{Mode: gin.TestMode, Storage: memory.New(), Backend: trackfit.NewClient("http://x", time.Second)}},
		{"missing storage", Config{Mode: gin.TestMode, Port: 1, Backend: trackfit.NewClient("http://x", time.Second)}},
		{"missing backend", Config{Mode: gin.TestMode, Port: 1, Storage: memory.New()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, memory.New())

	for _, path := range []string{"/health", "/ready", "/live"} {
		code, body := call(t, srv, http.MethodGet, path, "")
		if code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, code)
		}
		data, _ := body["data"].(map[string]any)
		if data["service"] != ServiceName {
			t.Errorf("%s: unexpected service %v", path, data["service"])
		}
	}
}

func TestReadyReflectsStorage(t *testing.T) {
	store := memory.New()
	srv := newTestServer(t, store)

	code, body := call(t, srv, http.MethodGet, "/ready", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if data := body["data"].(map[string]any); data["storage"] != "ok" {
		t.Errorf("unexpected storage state %v", data["storage"])
	}

	store.GetErr = errors.New("database is locked")
	code, body = call(t, srv, http.MethodGet, "/ready", "")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
	if data := body["data"].(map[string]any); data["status"] != "not_ready" || data["storage"] != "unavailable" {
		t.Errorf("unexpected readiness body %v", data)
	}

	// Liveness does not depend on storage.
	if code, _ := call(t, srv, http.MethodGet, "/live", ""); code != http.StatusOK {
		t.Errorf("live: expected 200, got %d", code)
	}
}

func TestChecklistIsPartitionedBySignedInUser(t *testing.T) {
	store := memory.New()
	srv := newTestServer(t, store)

	// Signed out: the anonymous partition is used.
	call(t, srv, http.MethodPost, "/api/v1/checklist/items", `{"title":"Warm up"}`)
	if _, found, _ := store.Get(t.Context(), checklist.StoragePrefix+checklist.AnonymousKey); !found {
		t.Fatal("expected the anonymous checklist to be stored")
	}

	if code, _ := call(t, srv, http.MethodPost, "/api/v1/auth/start", `{"name":"Ana","email":"ana@example.com"}`); code != http.StatusOK {
		t.Fatalf("sign in: expected 200, got %d", code)
	}

	_, body := call(t, srv, http.MethodGet, "/api/v1/checklist", "")
	data := body["data"].(map[string]any)
	if data["user_key"] != "42" {
		t.Errorf("expected user key 42, got %v", data["user_key"])
	}
	if items := data["items"].([]any); len(items) != 0 {
		t.Errorf("expected an empty checklist for the new user, got %v", items)
	}

	code, body := call(t, srv, http.MethodGet, "/api/v1/stats/overview", "")
	if code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d (%v)", code, body)
	}
	if streak := body["data"].(map[string]any)["streak"]; streak != "2 days" {
		t.Errorf("unexpected streak %v", streak)
	}
}

func TestBackendRoutesRequireSession(t *testing.T) {
	srv := newTestServer(t, memory.New())

	code, body := call(t, srv, http.MethodGet, "/api/v1/routines", "")
	if code != http.StatusUnauthorized || body["message"] != "You need to sign in first." {
		t.Errorf("unexpected response %d %v", code, body)
	}
}
