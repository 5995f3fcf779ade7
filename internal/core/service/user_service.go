package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

// UserService implements self-service profile management and the admin user
// collection.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// UpdateProfile patches name/email only. Password changes must go through the
// dedicated update-password operation so passwordChangedAt is stamped.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ports.ProfileUpdateInput) (*domain.User, error) {
	if input.Password != "" || input.PasswordConfirm != "" {
		return nil, domain.NewBadRequest("This route is not for password updates, please use /update-password")
	}

	update := ports.UserUpdate{}
	if input.Name != "" {
		update.Name = &input.Name
	}
	if input.Email != "" {
		email := strings.ToLower(input.Email)
		update.Email = &email
	}

	user, err := s.users.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

func (s *UserService) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.users.Deactivate(ctx, userID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("account deactivated")
	return nil
}

func (s *UserService) List(ctx context.Context, query ports.ListQuery) ([]domain.User, error) {
	return s.users.FindAll(ctx, query)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	if update.Role != nil && !domain.ValidRole(*update.Role) {
		return nil, domain.NewValidation("role must be one of: user, guide, lead-guide, admin")
	}
	if update.Email != nil {
		email := strings.ToLower(*update.Email)
		update.Email = &email
	}
	return s.users.Update(ctx, id, update)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
