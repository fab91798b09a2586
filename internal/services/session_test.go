package services

import (
	"context"
	"strings"
	"testing"

	"roadmate-backend/internal/models"
	"roadmate-backend/internal/repository"

	"github.com/google/uuid"
)

type sessionKey struct {
	userID   uuid.UUID
	deviceID string
}

// fakeSessionStore mirrors the transactional get-or-create the real store
// performs, backed by maps.
type fakeSessionStore struct {
	passwords map[uuid.UUID]string
	tokens    map[sessionKey]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		passwords: map[uuid.UUID]string{},
		tokens:    map[sessionKey]string{},
	}
}

func (f *fakeSessionStore) Authorize(_ context.Context, candidate *models.Session, hashedPassword string) (string, error) {
	if f.passwords[candidate.UserID] != hashedPassword {
		return "", repository.ErrNotAuthorized
	}
	key := sessionKey{candidate.UserID, candidate.DeviceID}
	if token, ok := f.tokens[key]; ok {
		return token, nil
	}
	f.tokens[key] = candidate.Token
	return candidate.Token, nil
}

func (f *fakeSessionStore) IsAuthenticated(_ context.Context, userID uuid.UUID, deviceID, token string) error {
	stored, ok := f.tokens[sessionKey{userID, deviceID}]
	if !ok || stored != token {
		return repository.ErrUnauthenticated
	}
	return nil
}

func TestGenerateToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		token := generateToken()
		if len(token) != tokenLength {
			t.Fatalf("want length %d, got %d", tokenLength, len(token))
		}
		for _, c := range token {
			if !strings.ContainsRune(tokenChars, c) {
				t.Fatalf("token contains %q outside the alphabet", c)
			}
		}
		if strings.Contains(token, ".") {
			t.Fatal("token must not contain the compound separator")
		}
		if seen[token] {
			t.Fatal("generator repeated a token")
		}
		seen[token] = true
	}
}

func TestAuthorizeIsIdempotentPerDevice(t *testing.T) {
	store := newFakeSessionStore()
	svc := NewSessionService(store)

	userID := uuid.New()
	store.passwords[userID] = "a2f1c08d7e5b4a6f9c3d2e1b0a9f8e7d"

	first, err := svc.Authorize(context.Background(), userID, "device-1", store.passwords[userID])
	if err != nil {
		t.Fatalf("first authorize: %v", err)
	}
	second, err := svc.Authorize(context.Background(), userID, "device-1", store.passwords[userID])
	if err != nil {
		t.Fatalf("second authorize: %v", err)
	}
	if first != second {
		t.Errorf("same device must reuse its token:\n%s\n%s", first, second)
	}

	other, err := svc.Authorize(context.Background(), userID, "device-2", store.passwords[userID])
	if err != nil {
		t.Fatalf("other device authorize: %v", err)
	}
	if other == first {
		t.Error("a different device must get its own token")
	}
}

func TestAuthorizeCompoundTokenShape(t *testing.T) {
	store := newFakeSessionStore()
	svc := NewSessionService(store)

	userID := uuid.New()
	store.passwords[userID] = "b3e2d19c8f7a6b5e4d3c2b1a0f9e8d7c"

	compound, err := svc.Authorize(context.Background(), userID, "device-1", store.passwords[userID])
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}

	parts := strings.SplitN(compound, ".", 3)
	if len(parts) != 3 {
		t.Fatalf("want token.user_id.device_id, got %q", compound)
	}
	if len(parts[0]) != tokenLength {
		t.Errorf("token part has length %d", len(parts[0]))
	}
	if parts[1] != userID.String() {
		t.Errorf("user part: want %s, got %s", userID, parts[1])
	}
	if parts[2] != "device-1" {
		t.Errorf("device part: want device-1, got %s", parts[2])
	}
}

func TestAuthorizeWrongCredentialCreatesNoSession(t *testing.T) {
	store := newFakeSessionStore()
	svc := NewSessionService(store)

	userID := uuid.New()
	store.passwords[userID] = "c4d3e2f10a9b8c7d6e5f4a3b2c1d0e9f"

	_, err := svc.Authorize(context.Background(), userID, "device-1", "wrong-password-wrong-password-xx")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err != repository.ErrNotAuthorized {
		t.Fatalf("want ErrNotAuthorized, got %v", err)
	}
	if len(store.tokens) != 0 {
		t.Error("no session row may exist after a failed authorize")
	}

	// unknown user behaves exactly the same
	if _, err := svc.Authorize(context.Background(), uuid.New(), "device-1", store.passwords[userID]); err != repository.ErrNotAuthorized {
		t.Fatalf("unknown user: want ErrNotAuthorized, got %v", err)
	}
}

func TestIsAuthenticatedRoundTrip(t *testing.T) {
	store := newFakeSessionStore()
	svc := NewSessionService(store)

	userID := uuid.New()
	store.passwords[userID] = "d5e4f3a2b1c0d9e8f7a6b5c4d3e2f1a0"

	compound, err := svc.Authorize(context.Background(), userID, "device-1", store.passwords[userID])
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	token := strings.SplitN(compound, ".", 3)[0]

	if err := svc.IsAuthenticated(context.Background(), userID, "device-1", token); err != nil {
		t.Errorf("freshly issued token must authenticate: %v", err)
	}
	if err := svc.IsAuthenticated(context.Background(), userID, "device-1", token+"x"); err != repository.ErrUnauthenticated {
		t.Errorf("altered token: want ErrUnauthenticated, got %v", err)
	}
	if err := svc.IsAuthenticated(context.Background(), userID, "device-2", token); err != repository.ErrUnauthenticated {
		t.Errorf("unknown device: want ErrUnauthenticated, got %v", err)
	}
}
