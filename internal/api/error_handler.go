package api

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wildtrails/tours-api/internal/core/domain"
)

// errorBody is the canonical error envelope. Error and Stack are populated in
// verbose mode only.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// NewHTTPErrorHandler returns the single exit point for all request failures:
// every error is classified into the taxonomy and rendered either verbosely
// (development) or sanitized (production). Handlers never write their own
// error responses.
func NewHTTPErrorHandler(verbose bool, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		classified := classify(err)

		if verbose {
			sendVerbose(classified, c)
			return
		}
		sendSanitized(classified, log, c)
	}
}

func sendVerbose(err error, c echo.Context) {
	code := http.StatusInternalServerError
	status := "error"
	message := err.Error()
	if e, ok := domain.AsError(err); ok {
		code, status, message = e.Code, e.Status(), e.Message
	}

	_ = c.JSON(code, errorBody{
		Status:  status,
		Message: message,
		Error:   fmt.Sprintf("%+v", err),
		Stack:   string(debug.Stack()),
	})
}

func sendSanitized(err error, log zerolog.Logger, c echo.Context) {
	if e, ok := domain.AsError(err); ok {
		_ = c.JSON(e.Code, errorBody{Status: e.Status(), Message: e.Message})
		return
	}

	// Non-operational: log the real cause, never leak it to the client.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	_ = c.JSON(http.StatusInternalServerError, errorBody{
		Status:  "error",
		Message: "Something went wrong!",
	})
}
