package places

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := New(context.Background(), ""); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestBuildQuery(t *testing.T) {
	if got := BuildQuery("들깨수제비", "서울"); got != "서울 들깨수제비 맛집" {
		t.Errorf("BuildQuery() = %q", got)
	}
}

func TestMapURL(t *testing.T) {
	got := MapURL("abc123", "명동 칼국수")
	if !strings.HasPrefix(got, "https://www.google.com/maps/search/?") {
		t.Fatalf("unexpected prefix: %s", got)
	}
	if !strings.Contains(got, "query_place_id=abc123") {
		t.Errorf("missing place id: %s", got)
	}
	if strings.Contains(MapURL("", "x"), "query_place_id") {
		t.Error("empty id should be omitted")
	}
}
