package httpserver

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"emotion-assistant/config"
	"emotion-assistant/internal/assistant"
	"emotion-assistant/internal/middleware"
	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/scope"
)

// ── Helpers ────────────────────────────────────────────────────────────

func newTestServer(t *testing.T, port int) *HTTPServer {
	t.Helper()

	// Nothing listens on port 1, so every ping fails fast.
	db, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	jwtManager, err := scope.New("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	a, err := assistant.Build(context.Background(), &config.Config{
		LLM: config.LLMConfig{Providers: []config.ProviderConfig{
			{Name: "groq", Enabled: true, Priority: 1, APIKey: "test-key", Model: "llama3-70b-8192"},
		}},
		Assistant: config.AssistantConfig{MaxSessions: 10, SessionTTL: time.Minute, ChatHistorySize: 10, TranscriptWindow: 5},
	}, log.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	srv, err := New(log.NewNop(), Config{
		Port:        port,
		Mode:        gin.TestMode,
		Environment: "test",
		PostgresDB:  db,
		JWTManager:  jwtManager,
		Cookie:      middleware.CookieConfig{Name: "token", TTL: time.Hour},
		Middleware:  middleware.Config{AllowedOrigins: []string{"http://localhost:5173"}},
		Assistant:   a,
	})
	if err != nil {
		t.Fatal(err)
	}
	return srv
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────

func TestNew_Validate(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, 8080)

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/live", http.StatusOK},
		{"/ready", http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(srv, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestDomainRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t, 8080)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/status"},
		{http.MethodGet, "/api/sessions"},
		{http.MethodPost, "/api/get_response"},
		{http.MethodGet, "/api/bookmarks"},
	} {
		w := serve(srv, httptest.NewRequest(route.method, route.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", route.method, route.path, w.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, 8080)

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(srv, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Errorf("unexpected allow-origin %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	_ = l.Close()

	srv := newTestServer(t, port)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
