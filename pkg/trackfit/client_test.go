package trackfit_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trackfit-companion/pkg/trackfit"
)

func TestTrackfitClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/start", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(trackfit.AuthTokenHeader) != "" {
			t.Errorf("auth/start must not send a token")
		}
		var req trackfit.StartSessionRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(map[string]any{
			"userId": 7, "name": req.Name, "email": req.Email, "authToken": "tok",
		})
	})

	mux.HandleFunc("/api/stats/overview", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(trackfit.AuthTokenHeader) != "tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"currentStreakDays":4,"routineConsistencyPercent":82.6}`))
	})

	mux.HandleFunc("/api/routines", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":1,"title":"Squats","targetDate":"2026-10-20","completed":true},{"id":"b","title":"Plank","description":null,"targetDate":null,"completed":false}]`))
		case http.MethodPost:
			raw, _ := io.ReadAll(r.Body)
			if string(raw) != `{"title":"Run","description":null,"targetDate":null}` {
				t.Errorf("unexpected create body %s", raw)
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":3}`))
		}
	})

	mux.HandleFunc("/api/routines/3/completed", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Query().Get("value") != "true" {
			t.Errorf("unexpected completed call %s %s", r.Method, r.URL)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/api/routines/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "routine not found", http.StatusNotFound)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	ctx := context.Background()
	client := trackfit.NewClient(ts.URL+"/api/", 5*time.Second)

	t.Run("StartSession", func(t *testing.T) {
		out, err := client.StartSession(ctx, trackfit.StartSessionRequest{Name: "Ana", Email: "ana@example.com"})
		if err != nil {
			t.Fatalf("StartSession: %v", err)
		}
		if out.UserID != "7" || out.AuthToken != "tok" || out.Name != "Ana" {
			t.Errorf("unexpected session %+v", out)
		}
	})

	t.Run("Overview", func(t *testing.T) {
		stats, err := client.Overview(ctx, "tok")
		if err != nil {
			t.Fatalf("Overview: %v", err)
		}
		if stats.CurrentStreakDays != 4 || stats.TotalWorkoutsLogged != 0 {
			t.Errorf("unexpected stats %+v", stats)
		}
	})

	t.Run("Overview unauthorized", func(t *testing.T) {
		_, err := client.Overview(ctx, "wrong")
		var apiErr *trackfit.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 APIError, got %v", err)
		}
		if apiErr.Message != trackfit.DefaultErrorMessage {
			t.Errorf("expected default message, got %q", apiErr.Message)
		}
	})

	t.Run("ListRoutines", func(t *testing.T) {
		tasks, err := client.ListRoutines(ctx, "tok")
		if err != nil {
			t.Fatalf("ListRoutines: %v", err)
		}
		if len(tasks) != 2 || tasks[0].ID != "1" || tasks[1].ID != "b" {
			t.Fatalf("unexpected tasks %+v", tasks)
		}
		if tasks[0].TargetDate == nil || *tasks[0].TargetDate != "2026-10-20" || tasks[1].TargetDate != nil {
			t.Errorf("unexpected target dates %+v", tasks)
		}
	})

	t.Run("CreateRoutine", func(t *testing.T) {
		if err := client.CreateRoutine(ctx, "tok", trackfit.CreateRoutineRequest{Title: "Run"}); err != nil {
			t.Errorf("CreateRoutine: %v", err)
		}
	})

	t.Run("SetRoutineCompleted", func(t *testing.T) {
		if err := client.SetRoutineCompleted(ctx, "tok", "3", true); err != nil {
			t.Errorf("SetRoutineCompleted: %v", err)
		}
	})

	t.Run("DeleteRoutine not found", func(t *testing.T) {
		err := client.DeleteRoutine(ctx, "tok", "missing")
		var apiErr *trackfit.APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "routine not found" {
			t.Errorf("expected body text as message, got %v", err)
		}
	})

	t.Run("Missing token", func(t *testing.T) {
		if _, err := client.ListRoutines(ctx, ""); !errors.Is(err, trackfit.ErrMissingToken) {
			t.Errorf("expected ErrMissingToken, got %v", err)
		}
	})
}
