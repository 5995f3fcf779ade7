package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wildtrails/tours-api/internal/core/domain"
)

// quotedValue extracts the conflicting value from a duplicate-key driver message.
var quotedValue = regexp.MustCompile(`"(\\?.)*?"|'(\\?.)*?'`)

// classify maps raw collaborator failures into the operational error taxonomy.
// First match wins; anything unrecognised passes through unchanged and is
// treated as non-operational by the responder.
func classify(err error) error {
	// Already classified at the point of detection.
	if domain.IsOperational(err) {
		return err
	}

	// Echo's own errors: router 404, bind failures, body limit, etc.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fromHTTPError(he)
	}

	if errors.Is(err, primitive.ErrInvalidHex) {
		return domain.NewCast("invalid _id")
	}

	if mongo.IsDuplicateKeyError(err) {
		msg := "Duplicate field value. please use another value"
		if v := quotedValue.FindString(err.Error()); v != "" {
			msg = fmt.Sprintf("Duplicate field value: %s. please use another value", v)
		}
		return domain.NewDuplicate(msg)
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return domain.NewValidation("Invalid input data. " + strings.Join(msgs, ". "))
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.NewUnauthenticated("Expired Token! Please login again")
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenNotValidYet):
		return domain.NewUnauthenticated("Invalid Token! Please login again")
	}

	return err
}

// fromHTTPError translates a framework error into the closest taxonomy kind,
// preserving the original status for codes outside the taxonomy (405, 413, 429).
func fromHTTPError(he *echo.HTTPError) *domain.Error {
	msg := fmt.Sprintf("%v", he.Message)
	switch he.Code {
	case http.StatusBadRequest:
		return domain.NewBadRequest(msg)
	case http.StatusUnauthorized:
		return domain.NewUnauthenticated(msg)
	case http.StatusForbidden:
		return domain.NewUnauthorized(msg)
	case http.StatusNotFound:
		return domain.NewNotFound(msg)
	case http.StatusUnprocessableEntity:
		return domain.NewValidation(msg)
	}

	kind := domain.KindBadRequest
	if he.Code >= http.StatusInternalServerError {
		kind = domain.KindInternal
	}
	return &domain.Error{Kind: kind, Code: he.Code, Message: msg}
}

// fieldError converts a single validation failure into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "eqfield":
		return "Passwords are not the same"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
