package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// detailAuthFailed deliberately does not say which field was wrong.
const detailAuthFailed = "Authorization error. Check user_id, device_id or hashed_password"

// Authorizer is the service surface behind the authorization endpoint.
type Authorizer interface {
	Authorize(ctx context.Context, userID uuid.UUID, deviceID, hashedPassword string) (string, error)
}

// SessionHandler handles authorization HTTP requests
type SessionHandler struct {
	sessions Authorizer
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions Authorizer) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type authorizationRequest struct {
	UserID         string `json:"user_id"`
	DeviceID       string `json:"device_id"`
	HashedPassword string `json:"hashed_password"`
}

// Authorize handles POST /authorization
func (h *SessionHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	var req authorizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, detailAuthFailed)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil || req.DeviceID == "" || req.HashedPassword == "" {
		respondDetail(w, detailAuthFailed)
		return
	}

	token, err := h.sessions.Authorize(r.Context(), userID, req.DeviceID, req.HashedPassword)
	if err != nil {
		// one uniform body for credential mismatches and storage faults alike
		log.Warn().Err(err).Str("user_id", req.UserID).Msg("Authorization rejected")
		respondDetail(w, detailAuthFailed)
		return
	}

	respondJSON(w, map[string]any{"status": true, "token": token})
}
