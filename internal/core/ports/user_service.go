package ports

import (
	"context"

	"github.com/wildtrails/tours-api/internal/core/domain"
)

// ProfileUpdateInput is the self-service profile patch. Password fields are
// present only so the service can reject attempts to change the password here.
type ProfileUpdateInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

type UserService interface {
	UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error)
	// DeleteProfile soft-deletes the account (active=false).
	DeleteProfile(ctx context.Context, userID string) error
	List(ctx context.Context, query ListQuery) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
