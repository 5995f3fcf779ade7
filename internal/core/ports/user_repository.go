package ports

import (
	"context"
	"time"

	"github.com/wildtrails/tours-api/internal/core/domain"
)

// ListQuery carries raw list-endpoint query parameters (filter, sort, fields,
// page, limit) from the transport layer to storage untouched.
type ListQuery map[string]string

// UserUpdate holds the admin-editable user fields; nil means unchanged.
type UserUpdate struct {
	Name  *string
	Email *string
	Role  *string
}

// UserRepository defines user persistence. All read methods exclude
// soft-deleted users (active=false) unless noted otherwise.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByResetTokenHash matches a pending reset ticket whose expiry is
	// still after now.
	FindByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error)
	FindAll(ctx context.Context, query ListQuery) ([]domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	// UpdatePassword stores a new password hash, stamps passwordChangedAt and
	// clears any pending reset ticket in one atomic document update.
	UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error
	SetResetTicket(ctx context.Context, id, tokenHash string, expires time.Time) error
	ClearResetTicket(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
