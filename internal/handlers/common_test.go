package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"roadmate-backend/internal/auth"
	"roadmate-backend/internal/repository"

	"github.com/google/uuid"
)

type fakeGate struct {
	identity auth.Identity
	allow    bool
}

func (f *fakeGate) Authenticate(_ *http.Request) (auth.Identity, error) {
	if !f.allow {
		return auth.Identity{}, repository.ErrUnauthenticated
	}
	return f.identity, nil
}

func allowGate() *fakeGate {
	return &fakeGate{identity: auth.Identity{UserID: uuid.New(), DeviceID: "device-1", Token: "tok"}, allow: true}
}

func denyGate() *fakeGate {
	return &fakeGate{}
}

// do runs the handler and decodes the JSON body, checking the status-200
// contract on the way.
func do(t *testing.T, handler http.HandlerFunc, r *http.Request) map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	handler(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("every response must be HTTP 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("want application/json, got %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func wantStatus(t *testing.T, body map[string]any, ok bool) {
	t.Helper()
	status, exists := body["status"].(bool)
	if !exists {
		t.Fatalf("body carries no boolean status: %v", body)
	}
	if status != ok {
		t.Fatalf("want status %v, got body %v", ok, body)
	}
}
