package services

import (
	"context"

	"roadmate-backend/internal/models"

	"github.com/google/uuid"
)

// ProfileStore is the profile-store surface the service needs.
type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
}

// ProfileService handles search-profile business logic
type ProfileService struct {
	profiles ProfileStore
}

// NewProfileService creates a new profile service
func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// NewProfileInput is a validated profile-creation request.
type NewProfileInput struct {
	UserID        uuid.UUID
	DesiredGender models.Gender
	MinAge        int16
	MaxAge        int16
	Type          models.ProfileType
	VehicleType   models.VehicleType
}

// Create adds a search profile for the user. At most one profile may exist
// per (user, type); duplicates surface as repository.ErrProfileExists.
func (s *ProfileService) Create(ctx context.Context, in NewProfileInput) error {
	profile := &models.Profile{
		ID:            uuid.New(),
		UserID:        in.UserID,
		Active:        true,
		DesiredGender: in.DesiredGender,
		MinAge:        in.MinAge,
		MaxAge:        in.MaxAge,
		Type:          in.Type,
		VehicleType:   in.VehicleType,
	}
	return s.profiles.Create(ctx, profile)
}
