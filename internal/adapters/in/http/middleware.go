package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// OperatorTokenHeader carries the shared secret for operator endpoints.
const OperatorTokenHeader = "X-Operator-Token"

// RequireOperatorToken guards operator endpoints with a shared token.
// The comparison is constant-time so response timing leaks nothing
// about the configured value.
func RequireOperatorToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			provided := ctx.Request().Header.Get(OperatorTokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or missing operator token",
				})
			}
			return next(ctx)
		}
	}
}
