package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/conversation"
	"emotion-assistant/internal/middleware"
	"emotion-assistant/internal/model"
	"emotion-assistant/internal/session"
	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/places"
	"emotion-assistant/pkg/response"
	"emotion-assistant/pkg/scope"
)

// ── Mocks ──────────────────────────────────────────────────────────────

type mockUseCase struct {
	inputs []conversation.RespondInput
	scopes []model.Scope
	err    error
}

func (m *mockUseCase) Respond(ctx context.Context, sc model.Scope, in conversation.RespondInput) (conversation.RespondOutput, error) {
	m.inputs = append(m.inputs, in)
	m.scopes = append(m.scopes, sc)
	if m.err != nil {
		return conversation.RespondOutput{}, m.err
	}
	return conversation.RespondOutput{
		SessionID:  "s1",
		Message:    "떡볶이 어때요?",
		Path:       conversation.PathRecommend,
		Food:       "떡볶이",
		Restaurant: &places.Place{ID: "p1", Name: "신당동", Address: "서울 중구", Rating: 4.2, MapURL: "https://maps.test/p1"},
		Location:   "서울",
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

type mockJWT struct{}

func (mockJWT) CreateToken(p scope.Payload) (string, error) { return "tok", nil }
func (mockJWT) Verify(token string) (scope.Payload, error) {
	return scope.Payload{UserID: 3, Email: "a@b.co"}, nil
}

// ── Helpers ────────────────────────────────────────────────────────────

func newTestRouter(uc *mockUseCase, perMin, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cookie := middleware.CookieConfig{Name: "token", TTL: time.Hour}
	mw := middleware.New(log.NewNop(), mockJWT{}, cookie, middleware.Config{RequestsPerMin: perMin, Burst: burst})

	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc), mw)
	return r
}

func post(r *gin.Engine, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/get_response", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(&http.Cookie{Name: "token", Value: "tok"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────

func TestGetResponse_JSON(t *testing.T) {
	uc := &mockUseCase{}
	w := post(newTestRouter(uc, 60, 5), "application/json", `{"message":"우울해","session_id":"s1","location":"부산"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.inputs[0] != (conversation.RespondInput{SessionID: "s1", Message: "우울해", Location: "부산"}) {
		t.Errorf("unexpected input %+v", uc.inputs[0])
	}
	if uc.scopes[0].UserID != 3 {
		t.Errorf("scope not taken from token: %+v", uc.scopes[0])
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	data := resp.Data.(map[string]interface{})
	if data["name"] != "신당동" || data["url"] != "https://maps.test/p1" || data["food"] != "떡볶이" {
		t.Errorf("unexpected data %v", data)
	}
	restaurant := data["restaurant"].(map[string]interface{})
	if restaurant["address"] != "서울 중구" {
		t.Errorf("unexpected restaurant %v", restaurant)
	}
}

func TestGetResponse_Form(t *testing.T) {
	uc := &mockUseCase{}
	form := url.Values{"message": {"고마워"}}
	w := post(newTestRouter(uc, 60, 5), "application/x-www-form-urlencoded", form.Encode())

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.inputs[0].Message != "고마워" || uc.inputs[0].SessionID != "" {
		t.Errorf("unexpected input %+v", uc.inputs[0])
	}
}

func TestGetResponse_MissingMessage(t *testing.T) {
	uc := &mockUseCase{}
	w := post(newTestRouter(uc, 60, 5), "application/json", `{"session_id":"s1"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if len(uc.inputs) != 0 {
		t.Error("usecase should not be called")
	}
}

func TestGetResponse_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"forbidden", session.ErrForbidden, http.StatusForbidden},
		{"blank", conversation.ErrEmptyMessage, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(newTestRouter(&mockUseCase{err: tt.err}, 60, 5), "application/json", `{"message":"안녕"}`)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestGetResponse_RateLimited(t *testing.T) {
	r := newTestRouter(&mockUseCase{}, 1, 1)

	if w := post(r, "application/json", `{"message":"안녕"}`); w.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", w.Code)
	}
	if w := post(r, "application/json", `{"message":"안녕"}`); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}
