package handlers

import (
	"encoding/json"
	"net/http"

	"roadmate-backend/internal/auth"
)

// Business outcomes ride in the body; the HTTP status is 200 either way.

const detailNotAuthorized = "User is not authorized"

// Gate authenticates a request and returns the identity it presented.
type Gate interface {
	Authenticate(r *http.Request) (auth.Identity, error)
}

// respondJSON writes v as the 200 response body.
func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

// respondDetail reports a failed outcome under the "detail" key.
func respondDetail(w http.ResponseWriter, detail string) {
	respondJSON(w, map[string]any{"status": false, "detail": detail})
}

// respondError reports a failed outcome under the "error" key (registration
// keeps this older key for client compatibility).
func respondError(w http.ResponseWriter, message string) {
	respondJSON(w, map[string]any{"status": false, "error": message})
}

// respondUnauthorized is the uniform body for every gate rejection.
func respondUnauthorized(w http.ResponseWriter) {
	respondDetail(w, detailNotAuthorized)
}
