package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/domain"
	"github.com/nfrund/mood2move/internal/view"
)

// StoreFunc returns the credential store for a request.
type StoreFunc func(c echo.Context) domain.CredentialStore

// RequireCredential sends visitors without an access token to loginURL.
// It only checks presence; the backend decides whether the token is valid.
func RequireCredential(loginURL string, storeFor StoreFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			token, err := storeFor(c).Get(ctx, domain.AccessTokenKey)
			if err != nil {
				FromContext(ctx).Warn("could not read credential session", "error", err)
				return view.Redirect(c, loginURL)
			}
			if token == "" {
				return view.Redirect(c, loginURL)
			}
			return next(c)
		}
	}
}
