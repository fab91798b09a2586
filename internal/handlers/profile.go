package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"roadmate-backend/internal/models"
	"roadmate-backend/internal/repository"
	"roadmate-backend/internal/services"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ProfileCreator is the service surface behind the profile endpoint.
type ProfileCreator interface {
	Create(ctx context.Context, in services.NewProfileInput) error
}

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	profiles ProfileCreator
	gate     Gate
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles ProfileCreator, gate Gate) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, gate: gate}
}

type createProfileRequest struct {
	UserID        string `json:"user_id"`
	DesiredGender string `json:"desired_gender"`
	MinAge        int16  `json:"min_age"`
	MaxAge        int16  `json:"max_age"`
	ProfileType   string `json:"profile_type"`
	VehicleType   string `json:"vehicle_type"`
}

func (req *createProfileRequest) validate() (services.NewProfileInput, string) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return services.NewProfileInput{}, "user_id must be a UUID"
	}
	gender, ok := models.ParseGender(req.DesiredGender)
	if !ok {
		return services.NewProfileInput{}, "desired_gender must be male or female"
	}
	if req.MinAge < 16 || req.MaxAge > 100 || req.MinAge > req.MaxAge {
		return services.NewProfileInput{}, "age range must be within 16 to 100"
	}
	profileType, ok := models.ParseProfileType(req.ProfileType)
	if !ok {
		return services.NewProfileInput{}, "unknown profile_type"
	}
	vehicleType, ok := models.ParseVehicleType(req.VehicleType)
	if !ok {
		return services.NewProfileInput{}, "unknown vehicle_type"
	}
	return services.NewProfileInput{
		UserID:        userID,
		DesiredGender: gender,
		MinAge:        req.MinAge,
		MaxAge:        req.MaxAge,
		Type:          profileType,
		VehicleType:   vehicleType,
	}, ""
}

// Create handles POST /create_profile
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, err := h.gate.Authenticate(r)
	if err != nil {
		respondUnauthorized(w)
		return
	}

	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, "Invalid request body")
		return
	}

	in, msg := req.validate()
	if msg != "" {
		respondDetail(w, msg)
		return
	}

	if err := h.profiles.Create(r.Context(), in); err != nil {
		switch {
		case errors.Is(err, repository.ErrProfileExists):
			respondDetail(w, "Profile of this type already exists")
		case errors.Is(err, repository.ErrUnknownUser):
			respondDetail(w, "Wrong user_id")
		default:
			log.Error().
				Err(err).
				Str("user_id", req.UserID).
				Str("caller_id", identity.UserID.String()).
				Msg("Failed to create profile")
			respondDetail(w, "Operation failed")
		}
		return
	}

	respondJSON(w, map[string]any{"status": true})
}
