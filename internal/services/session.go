package services

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"roadmate-backend/internal/models"

	"github.com/google/uuid"
)

const (
	tokenLength = 64
	tokenChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// SessionStore is the session-manager surface the service needs.
type SessionStore interface {
	Authorize(ctx context.Context, candidate *models.Session, hashedPassword string) (string, error)
	IsAuthenticated(ctx context.Context, userID uuid.UUID, deviceID, token string) error
}

// SessionService handles session issuance and validation
type SessionService struct {
	sessions SessionStore
}

// NewSessionService creates a new session service
func NewSessionService(sessions SessionStore) *SessionService {
	return &SessionService{sessions: sessions}
}

// generateToken mints a random alphanumeric token. The alphabet contains no
// separator characters, so the compound credential stays parseable.
func generateToken() string {
	token := make([]byte, tokenLength)
	for i := range token {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(tokenChars))))
		token[i] = tokenChars[n.Int64()]
	}
	return string(token)
}

// Authorize issues or reuses the session token for (user, device) and returns
// it in compound form "token.user_id.device_id". Sessions never expire; the
// same device keeps getting the same token back.
func (s *SessionService) Authorize(ctx context.Context, userID uuid.UUID, deviceID, hashedPassword string) (string, error) {
	candidate := &models.Session{
		ID:        uuid.New(),
		UserID:    userID,
		DeviceID:  deviceID,
		StartTime: time.Now().UTC(),
		Token:     generateToken(),
	}

	token, err := s.sessions.Authorize(ctx, candidate, hashedPassword)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{token, userID.String(), deviceID}, "."), nil
}

// IsAuthenticated reports whether the presented triple names a live session.
func (s *SessionService) IsAuthenticated(ctx context.Context, userID uuid.UUID, deviceID, token string) error {
	return s.sessions.IsAuthenticated(ctx, userID, deviceID, token)
}
