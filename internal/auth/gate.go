// Package auth is the request-boundary gate: it turns the compound
// credential presented by a client into an explicit identity, or rejects it.
package auth

import (
	"context"
	"net/http"
	"strings"

	"roadmate-backend/internal/repository"

	"github.com/google/uuid"
)

// Identity names the session a request authenticated as. Handlers receive it
// as an explicit value and thread it onward; nothing is stashed in the
// request context.
type Identity struct {
	UserID   uuid.UUID
	DeviceID string
	Token    string
}

// Authenticator validates a credential triple against live sessions.
type Authenticator interface {
	IsAuthenticated(ctx context.Context, userID uuid.UUID, deviceID, token string) error
}

// Gate checks the Authorization header of incoming requests.
type Gate struct {
	sessions Authenticator
}

// NewGate creates a new auth gate
func NewGate(sessions Authenticator) *Gate {
	return &Gate{sessions: sessions}
}

// Authenticate parses the compound credential "token.user_id.device_id" from
// the Authorization header and checks it against the session store. Every
// failure mode comes back as the same ErrUnauthenticated so a caller cannot
// probe which field was wrong.
func (g *Gate) Authenticate(r *http.Request) (Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Identity{}, repository.ErrUnauthenticated
	}

	// token and user id contain no periods, so any extra ones belong to the
	// device id
	parts := strings.SplitN(header, ".", 3)
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return Identity{}, repository.ErrUnauthenticated
	}

	userID, err := uuid.Parse(parts[1])
	if err != nil {
		return Identity{}, repository.ErrUnauthenticated
	}

	id := Identity{UserID: userID, DeviceID: parts[2], Token: parts[0]}
	if err := g.sessions.IsAuthenticated(r.Context(), id.UserID, id.DeviceID, id.Token); err != nil {
		return Identity{}, err
	}
	return id, nil
}
