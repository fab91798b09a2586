package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"roadmate-backend/internal/models"
	"roadmate-backend/internal/repository"
	"roadmate-backend/internal/services"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Registrar is the service surface behind the registration endpoint.
type Registrar interface {
	Register(ctx context.Context, in services.RegistrationInput) (uuid.UUID, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users Registrar
}

// NewUserHandler creates a new user handler
func NewUserHandler(users Registrar) *UserHandler {
	return &UserHandler{users: users}
}

type registrationRequest struct {
	Nickname       string `json:"nickname"`
	FirstName      string `json:"first_name"`
	HashedPassword string `json:"hashed_password"`
	BornDate       int64  `json:"born_date"`
	Gender         string `json:"gender"`
}

func (req *registrationRequest) validate() (services.RegistrationInput, string) {
	if l := len(req.Nickname); l < 3 || l > 35 {
		return services.RegistrationInput{}, "nickname must be 3 to 35 characters"
	}
	if l := len(req.FirstName); l < 2 || l > 35 {
		return services.RegistrationInput{}, "first_name must be 2 to 35 characters"
	}
	if l := len(req.HashedPassword); l < 32 || l > 128 {
		return services.RegistrationInput{}, "hashed_password must be 32 to 128 characters"
	}
	gender, ok := models.ParseGender(req.Gender)
	if !ok {
		return services.RegistrationInput{}, "gender must be male or female"
	}
	if req.BornDate <= 0 {
		return services.RegistrationInput{}, "born_date must be a unix timestamp"
	}
	return services.RegistrationInput{
		Nickname:       req.Nickname,
		FirstName:      req.FirstName,
		HashedPassword: req.HashedPassword,
		BornDate:       time.Unix(req.BornDate, 0).UTC(),
		Gender:         gender,
	}, ""
}

// Register handles POST /registration
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body")
		return
	}

	in, msg := req.validate()
	if msg != "" {
		respondError(w, msg)
		return
	}

	userID, err := h.users.Register(r.Context(), in)
	if err != nil {
		if errors.Is(err, repository.ErrNicknameTaken) {
			respondError(w, "User with the same nickname is already registered")
			return
		}
		log.Error().Err(err).Str("nickname", req.Nickname).Msg("Failed to register user")
		respondError(w, "Registration failed")
		return
	}

	log.Info().Str("user_id", userID.String()).Msg("User registered")
	respondJSON(w, map[string]any{"status": true, "user_id": userID})
}
