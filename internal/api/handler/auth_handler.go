package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wildtrails/tours-api/internal/api/metrics"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

// AuthHandler exposes the account and session endpoints.
type AuthHandler struct {
	auth          ports.AuthService
	cookieDays    int
	secureCookies bool
}

func NewAuthHandler(auth ports.AuthService, cookieDays int, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieDays: cookieDays, secureCookies: secureCookies}
}

// SignUp creates an account and opens a session.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Account details"
// @Success      201   {object}  envelope
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/users/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.auth.SignUp(c.Request().Context(), ports.SignUpInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Role:            req.Role,
	})
	if err != nil {
		metrics.SignUps.WithLabelValues(metrics.ResultFailure).Inc()
		return err
	}
	metrics.SignUps.WithLabelValues(metrics.ResultSuccess).Inc()

	h.setSessionCookie(c, token)
	return successToken(c, http.StatusCreated, token, echo.Map{"user": user})
}

// SignIn checks credentials and issues a session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  envelope
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/users/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.auth.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SignIns.WithLabelValues(metrics.ResultFailure).Inc()
		return err
	}
	metrics.SignIns.WithLabelValues(metrics.ResultSuccess).Inc()

	h.setSessionCookie(c, token)
	return successToken(c, http.StatusOK, token, echo.Map{"user": user})
}

// ForgotPassword mails a single-use password reset link.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  envelope
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/users/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.auth.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	metrics.PasswordResets.WithLabelValues(metrics.StageRequested).Inc()

	return successMessage(c, http.StatusOK, "Token sent to email!")
}

// ResetPassword consumes a mailed reset token and sets a new password.
//
// @Summary      Reset password with a mailed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path      string                true  "Raw reset token"
// @Param        body   body      resetPasswordRequest  true  "New password"
// @Success      200    {object}  envelope
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/users/reset-password/{token} [patch]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.auth.ResetPassword(c.Request().Context(),
		c.Param("token"), req.Password, req.PasswordConfirm)
	if err != nil {
		return err
	}
	metrics.PasswordResets.WithLabelValues(metrics.StageCompleted).Inc()

	h.setSessionCookie(c, token)
	return successToken(c, http.StatusOK, token, echo.Map{"user": user})
}

// UpdatePassword rotates the password of the signed-in user.
//
// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      updatePasswordRequest  true  "Current and new password"
// @Success      200   {object}  envelope
// @Failure      403   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/v1/users/update-password [patch]
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, token, err := h.auth.UpdatePassword(c.Request().Context(),
		user.ID, req.OldPassword, req.Password, req.PasswordConfirm)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return successToken(c, http.StatusOK, token, echo.Map{"user": updated})
}

// setSessionCookie mirrors the issued token into an http-only cookie. The
// cookie lifetime is configured separately from the token expiry.
func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.cookieDays) * 24 * time.Hour),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
