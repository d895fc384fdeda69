package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"leave-calendar-sync/internal/httpserver"
	"leave-calendar-sync/internal/middleware"
	"leave-calendar-sync/pkg/log"
)

type stubLeave struct{}

func (stubLeave) Sync(c *gin.Context)           { c.String(http.StatusOK, "sync") }
func (stubLeave) ProcessMessage(c *gin.Context) { c.String(http.StatusOK, "messages") }
func (stubLeave) Parse(c *gin.Context)          { c.String(http.StatusOK, "parse") }
func (stubLeave) Records(c *gin.Context)        { c.String(http.StatusOK, "records") }
func (stubLeave) CalendarICS(c *gin.Context)    { c.String(http.StatusOK, "ics") }

type stubSlack struct{}

func (stubSlack) HandleEvents(c *gin.Context) { c.String(http.StatusOK, "slack") }

func newServer(t *testing.T, cfg httpserver.Config) *httpserver.HTTPServer {
	t.Helper()
	srv, err := httpserver.New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func baseConfig() httpserver.Config {
	return httpserver.Config{
		Port:         8080,
		Mode:         gin.TestMode,
		Environment:  "test",
		StoreBackend: "notion",
		LeaveHandler: stubLeave{},
		SlackHandler: stubSlack{},
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *httpserver.Config)
	}{
		{"missing mode", func(c *httpserver.Config) { c.Mode = "" }},
		{"missing port", func(c *httpserver.Config) { c.Port = 0 }},
		{"missing leave handler", func(c *httpserver.Config) { c.LeaveHandler = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)
			if _, err := httpserver.New(log.NewNop(), cfg); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := httpserver.New(nil, baseConfig()); err == nil {
		t.Error("expected error for nil logger")
	}
}

func TestRoutes(t *testing.T) {
	srv := newServer(t, baseConfig())

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{http.MethodPost, "/api/v1/leave/sync", http.StatusOK, "sync"},
		{http.MethodPost, "/api/v1/leave/messages", http.StatusOK, "messages"},
		{http.MethodPost, "/api/v1/leave/parse", http.StatusOK, "parse"},
		{http.MethodGet, "/api/v1/leave/records", http.StatusOK, "records"},
		{http.MethodGet, "/api/v1/leave/calendar.ics", http.StatusOK, "ics"},
		{http.MethodPost, "/webhook/slack", http.StatusOK, "slack"},
		{http.MethodGet, "/api/v1/leave/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			srv.Handler().ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestInternalKey(t *testing.T) {
	cfg := baseConfig()
	cfg.InternalKey = "s3cret"
	srv := newServer(t, cfg)

	tests := []struct {
		method   string
		path     string
		key      string
		wantCode int
	}{
		{http.MethodPost, "/api/v1/leave/sync", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/leave/messages", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/leave/messages", "wrong", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/leave/sync", "s3cret", http.StatusOK},
		{http.MethodPost, "/api/v1/leave/messages", "s3cret", http.StatusOK},
		{http.MethodPost, "/api/v1/leave/parse", "", http.StatusOK},
		{http.MethodGet, "/api/v1/leave/calendar.ics", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" key="+tt.key, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(middleware.HeaderInternalKey, tt.key)
			}
			srv.Handler().ServeHTTP(w, req)
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestSlackRouteOptional(t *testing.T) {
	cfg := baseConfig()
	cfg.SlackHandler = nil
	srv := newServer(t, cfg)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/slack", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", w.Code)
	}
}

func TestHealthRoutes(t *testing.T) {
	srv := newServer(t, baseConfig())

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("code = %d", w.Code)
			}

			var body struct {
				Data map[string]string `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Data["status"] != status || body.Data["service"] != httpserver.ServiceName || body.Data["store"] != "notion" {
				t.Errorf("data = %v", body.Data)
			}
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := baseConfig()
	cfg.Port = 18931
	srv := newServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSwaggerHiddenInProduction(t *testing.T) {
	cfg := baseConfig()
	cfg.Environment = httpserver.EnvironmentProduction
	srv := newServer(t, cfg)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", w.Code)
	}
}
