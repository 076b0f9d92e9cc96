package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"trackfit-companion/internal/middleware"
	"trackfit-companion/pkg/log"
)

func newEngine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return r
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6.
	r := newEngine(middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 60, MaxClients: 10}))

	codes := map[int]int{}
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}

	if codes[http.StatusOK] != 6 {
		t.Errorf("expected 6 allowed requests, got %d", codes[http.StatusOK])
	}
	if codes[http.StatusTooManyRequests] != 4 {
		t.Errorf("expected 4 rejected requests, got %d", codes[http.StatusTooManyRequests])
	}

	// Another client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected second client to be allowed, got %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), middleware.Config{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc" || w.Header().Get(middleware.RequestIDHeader) != "abc" {
		t.Errorf("expected propagated request id, got body=%q header=%q", w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Body.Len() == 0 {
		t.Error("expected a generated request id")
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := gin.New()
	r.Use(mw.CORS([]string{"http://localhost:5173"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected preflight 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected allow origin %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow origin for unknown origin, got %q", got)
	}
}
