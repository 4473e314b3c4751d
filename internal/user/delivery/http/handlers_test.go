package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/middleware"
	"emotion-assistant/internal/model"
	"emotion-assistant/internal/user"
	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/response"
	"emotion-assistant/pkg/scope"
)

// ── Mocks ──────────────────────────────────────────────────────────────

type mockUseCase struct {
	signupErr error
	loginErr  error
	deleted   []model.Scope
}

func (m *mockUseCase) Signup(ctx context.Context, in user.SignupInput) (user.AuthOutput, error) {
	if m.signupErr != nil {
		return user.AuthOutput{}, m.signupErr
	}
	return user.AuthOutput{User: model.User{ID: 1, Name: in.Name, Email: in.Email}, Token: "tok"}, nil
}

func (m *mockUseCase) Login(ctx context.Context, in user.LoginInput) (user.AuthOutput, error) {
	if m.loginErr != nil {
		return user.AuthOutput{}, m.loginErr
	}
	return user.AuthOutput{User: model.User{ID: 1, Email: in.Email}, Token: "tok"}, nil
}

func (m *mockUseCase) Status(ctx context.Context, sc model.Scope) (model.User, error) {
	return model.User{ID: sc.UserID, Name: "지민", Email: sc.Email}, nil
}

func (m *mockUseCase) DeleteAccount(ctx context.Context, sc model.Scope) error {
	m.deleted = append(m.deleted, sc)
	return nil
}

type mockJWT struct{}

func (mockJWT) CreateToken(p scope.Payload) (string, error) { return "tok", nil }
func (mockJWT) Verify(token string) (scope.Payload, error) {
	return scope.Payload{UserID: 3, Email: "a@b.co"}, nil
}

// ── Helpers ────────────────────────────────────────────────────────────

type testEnv struct {
	router *gin.Engine
	uc     *mockUseCase
}

func newTestEnv() testEnv {
	gin.SetMode(gin.TestMode)
	cookie := middleware.CookieConfig{Name: "token", TTL: 3 * time.Hour}
	uc := &mockUseCase{}
	mw := middleware.New(log.NewNop(), mockJWT{}, cookie, middleware.Config{RequestsPerMin: 60, Burst: 5})

	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc, cookie), mw)
	return testEnv{router: r, uc: uc}
}

func (e testEnv) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.AddCookie(&http.Cookie{Name: "token", Value: "tok"})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────

func TestSignup(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/api/signup", `{"name":"지민","email":"a@b.co","password":"secret"}`, false)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "token=tok") {
		t.Errorf("auth cookie not set: %q", w.Header().Get("Set-Cookie"))
	}
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		body string
		want int
	}{
		{"missing fields", nil, `{"name":"x"}`, http.StatusBadRequest},
		{"bad email", user.ErrInvalidEmail, `{"name":"x","email":"x","password":"secret"}`, http.StatusBadRequest},
		{"duplicate", user.ErrEmailTaken, `{"name":"x","email":"a@b.co","password":"secret"}`, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			env.uc.signupErr = tt.err

			w := env.do(http.MethodPost, "/api/signup", tt.body, false)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv()
	env.uc.loginErr = user.ErrInvalidCredentials

	w := env.do(http.MethodPost, "/api/login", `{"email":"a@b.co","password":"nope"}`, false)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestStatus(t *testing.T) {
	env := newTestEnv()

	if w := env.do(http.MethodGet, "/api/status", "", false); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without cookie, got %d", w.Code)
	}

	w := env.do(http.MethodGet, "/api/status", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	data := resp.Data.(map[string]interface{})
	if data["logged_in"] != true || data["email"] != "a@b.co" {
		t.Errorf("unexpected status payload %v", data)
	}
}

func TestDeleteAccount_ClearsCookie(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodDelete, "/api/delete-account", "", true)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(env.uc.deleted) != 1 || env.uc.deleted[0].UserID != 3 {
		t.Errorf("unexpected deletes %v", env.uc.deleted)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "Max-Age=0") {
		t.Errorf("cookie not cleared: %q", w.Header().Get("Set-Cookie"))
	}
}
