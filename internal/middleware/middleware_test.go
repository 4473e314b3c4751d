package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/scope"
)

// ── Mocks ──────────────────────────────────────────────────────────────

type mockJWT struct {
	payload scope.Payload
	err     error
}

func (m mockJWT) CreateToken(p scope.Payload) (string, error) { return "t", nil }
func (m mockJWT) Verify(token string) (scope.Payload, error) {
	if token != "good" {
		return scope.Payload{}, errors.New("bad token")
	}
	return m.payload, m.err
}

// ── Helpers ────────────────────────────────────────────────────────────

var testCookie = CookieConfig{Name: "token", TTL: 3 * time.Hour}

func newTestMiddleware(perMin, burst int) Middleware {
	return New(log.NewNop(), mockJWT{payload: scope.Payload{UserID: 5, Email: "a@b.co"}}, testCookie, Config{
		AllowedOrigins: []string{"http://localhost:5173"},
		RequestsPerMin: perMin,
		Burst:          burst,
	})
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Any("/x", handlers...)
	return r
}

// ── Tests ──────────────────────────────────────────────────────────────

func TestAuth(t *testing.T) {
	mw := newTestMiddleware(60, 5)
	var seen scope.Payload
	r := newEngine(mw.Auth(), func(c *gin.Context) {
		seen, _ = scope.GetPayloadFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		cookie string
		want   int
	}{
		{"missing cookie", "", http.StatusUnauthorized},
		{"invalid token", "bad", http.StatusUnauthorized},
		{"valid token", "good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}

	if seen.UserID != 5 {
		t.Errorf("payload not propagated, got %+v", seen)
	}
}

func TestRateLimit(t *testing.T) {
	mw := newTestMiddleware(1, 2)
	r := newEngine(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence %v", codes)
	}

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected separate bucket, got %d", w.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	mw := newTestMiddleware(60, 5)
	r := newEngine(mw.CORS(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected allow origin %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("credentials should be allowed")
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	if got := extractIP(req); got != "1.2.3.4" {
		t.Errorf("expected first forwarded ip, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:80"
	if got := extractIP(req); got != "9.9.9.9" {
		t.Errorf("expected remote addr ip, got %s", got)
	}
}

func TestAuthCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SetAuthCookie(c, CookieConfig{Name: "token", TTL: time.Hour, Secure: true}, "abc")

	header := w.Header().Get("Set-Cookie")
	for _, want := range []string{"token=abc", "HttpOnly", "Secure", "SameSite=None", "Max-Age=3600"} {
		if !strings.Contains(header, want) {
			t.Errorf("cookie %q missing %q", header, want)
		}
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	ClearAuthCookie(c, testCookie)
	header = w.Header().Get("Set-Cookie")
	if !strings.Contains(header, "Max-Age=0") || !strings.Contains(header, "SameSite=Lax") {
		t.Errorf("unexpected clear cookie %q", header)
	}
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(1, 1, time.Minute)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("user:1") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("burst of 1 should admit exactly one request, got %d", got)
	}
}
