package ports

import (
	"context"

	"github.com/wildtrails/tours-api/internal/core/domain"
)

// SignUpInput carries the fields accepted when creating an account.
type SignUpInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
	Role            string // defaults to "user" when empty
}

// AuthService owns the session token lifecycle and password recovery.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, string, error)
	SignIn(ctx context.Context, email, password string) (*domain.User, string, error)
	// Authenticate verifies a bearer token, loads its subject and rejects
	// tokens issued before the subject's last password change.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, password, passwordConfirm string) (*domain.User, string, error)
	UpdatePassword(ctx context.Context, userID, oldPassword, password, passwordConfirm string) (*domain.User, string, error)
}

// Mailer dispatches outbound notification email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
