package services

import (
	"context"
	"fmt"
	"time"

	"roadmate-backend/internal/models"
	"roadmate-backend/internal/repository"

	"github.com/google/uuid"
)

// UserStore is the identity-store surface the service needs.
type UserStore interface {
	IsNicknameAvailable(ctx context.Context, nickname string) (bool, error)
	Create(ctx context.Context, user *models.User, ratingID uuid.UUID) error
}

// UserService handles registration business logic
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// RegistrationInput is a validated registration request.
type RegistrationInput struct {
	Nickname       string
	FirstName      string
	HashedPassword string
	BornDate       time.Time
	Gender         models.Gender
}

// Register creates a new user with a fresh rating row and returns the user
// id. The availability check and the insert run in the same logical
// operation; a concurrent registration slipping between them still surfaces
// as ErrNicknameTaken from the store.
func (s *UserService) Register(ctx context.Context, in RegistrationInput) (uuid.UUID, error) {
	available, err := s.users.IsNicknameAvailable(ctx, in.Nickname)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to check nickname: %w", err)
	}
	if !available {
		return uuid.Nil, repository.ErrNicknameTaken
	}

	user := &models.User{
		ID:             uuid.New(),
		Nickname:       in.Nickname,
		FirstName:      in.FirstName,
		RegTime:        time.Now().UTC(),
		BornDate:       in.BornDate,
		Gender:         in.Gender,
		HashedPassword: in.HashedPassword,
	}

	if err := s.users.Create(ctx, user, uuid.New()); err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}
