package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the fallback echo.HTTPErrorHandler. Handlers translate
// domain errors themselves; this catches everything that slips through
// (echo routing errors, panics surfaced by Recover) and keeps the JSON
// error shape uniform.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, echo.Map{"error": msg})
}
