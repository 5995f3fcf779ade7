package handler

import "github.com/labstack/echo/v4"

// envelope is the canonical success response shape.
type envelope struct {
	Status  string `json:"status"`
	Token   string `json:"token,omitempty"`
	Results *int   `json:"results,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func success(c echo.Context, code int, data any) error {
	return c.JSON(code, envelope{Status: "success", Data: data})
}

// successList includes a results count alongside the collection.
func successList(c echo.Context, code int, results int, data any) error {
	return c.JSON(code, envelope{Status: "success", Results: &results, Data: data})
}

func successMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, envelope{Status: "success", Message: message})
}

// successToken is used by every operation that issues a fresh session token.
func successToken(c echo.Context, code int, token string, data any) error {
	return c.JSON(code, envelope{Status: "success", Token: token, Data: data})
}
