package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

const (
	bcryptCost    = 12
	resetTokenTTL = 10 * time.Minute

	// passwordChangedAt is backdated by this much so a token issued in the
	// same second as the change is not invalidated by its own request.
	changedAtSkew = time.Second

	minPasswordLength = 8
)

// AuthService implements the session token lifecycle: sign-up/sign-in, bearer
// authentication and the password recovery flow.
type AuthService struct {
	users    ports.UserRepository
	mailer   ports.Mailer
	log      zerolog.Logger
	secret   []byte
	tokenTTL time.Duration
	baseURL  string
}

func NewAuthService(users ports.UserRepository, mailer ports.Mailer, log zerolog.Logger, jwtSecret string, tokenTTL time.Duration, baseURL string) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:    users,
		mailer:   mailer,
		log:      log,
		secret:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, string, error) {
	if input.Name == "" {
		return nil, "", domain.NewValidation("the name is required")
	}
	if input.Email == "" || input.Password == "" {
		return nil, "", domain.NewValidation("please provide email and password!")
	}
	if err := validatePassword(input.Password, input.PasswordConfirm); err != nil {
		return nil, "", err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, "", domain.NewValidation("role must be one of: user, guide, lead-guide, admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Duplicate email surfaces as a driver duplicate-key error and is
		// classified centrally.
		return nil, "", err
	}

	token, err := s.issueToken(user.ID, now)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user signed up")
	return user, token, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.NewValidation("please provide email and password!")
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			// Same response as a wrong password so callers cannot probe
			// which addresses are registered.
			s.log.Debug().Str("email", email).Msg("sign-in failed: unknown or inactive email")
			return nil, "", domain.NewNotFound("Incorrect credentials")
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Str("user_id", user.ID).Msg("sign-in failed: password mismatch")
		return nil, "", domain.NewNotFound("Incorrect credentials")
	}

	token, err := s.issueToken(user.ID, time.Now().UTC())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to its user. Verification failures
// return the raw jwt error so the classifier can distinguish malformed tokens
// from expired ones.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domain.NewUnauthenticated("Invalid Token! Please login again")
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.NewUnauthenticated("The user of this token does no longer exists")
		}
		return nil, err
	}

	if claims.IssuedAt != nil && user.ChangedPasswordAfter(claims.IssuedAt.Time) {
		return nil, domain.NewUnauthenticated("The user has changed the password recently")
	}

	return user, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.NewNotFound("User not found!")
		}
		return err
	}

	raw, err := generateResetToken()
	if err != nil {
		return err
	}

	expires := time.Now().UTC().Add(resetTokenTTL)
	if err := s.users.SetResetTicket(ctx, user.ID, domain.HashResetToken(raw), expires); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/api/v1/users/reset-password/%s", s.baseURL, raw)
	body := fmt.Sprintf(
		"Forgot your password? Submit a PATCH request with your new password and password confirm to: %s\nIf you didn't forget your password, please ignore this email!",
		resetURL,
	)

	if err := s.mailer.Send(ctx, user.Email, "Your password reset token (valid for 10 minutes)", body); err != nil {
		// The ticket must not dangle if the token never reached the user.
		if clearErr := s.users.ClearResetTicket(ctx, user.ID); clearErr != nil {
			s.log.Error().Err(clearErr).Str("user_id", user.ID).Msg("failed to roll back reset ticket")
		}
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("reset email dispatch failed")
		return domain.NewInternal("There was an error sending the email, Try again later")
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset email sent")
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, rawToken, password, passwordConfirm string) (*domain.User, string, error) {
	if err := validatePassword(password, passwordConfirm); err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user, err := s.users.FindByResetTokenHash(ctx, domain.HashResetToken(rawToken), now)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, "", domain.NewBadRequest("Token is invalid or has been expired")
		}
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, string(hash), now.Add(-changedAtSkew)); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID, now)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset completed")
	return user, token, nil
}

func (s *AuthService) UpdatePassword(ctx context.Context, userID, oldPassword, password, passwordConfirm string) (*domain.User, string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return nil, "", domain.NewUnauthorized("Incorrect password")
	}
	if err := validatePassword(password, passwordConfirm); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	if err := s.users.UpdatePassword(ctx, user.ID, string(hash), now.Add(-changedAtSkew)); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID, now)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password updated")
	return user, token, nil
}

func (s *AuthService) issueToken(userID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func validatePassword(password, confirm string) error {
	if len(password) < minPasswordLength {
		return domain.NewValidation("password must have at least 8 characters")
	}
	if password != confirm {
		return domain.NewValidation("Passwords are not the same")
	}
	return nil
}

// generateResetToken returns a 64-char hex secret. Only its hash is persisted.
func generateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
