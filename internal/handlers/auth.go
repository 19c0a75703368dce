package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/account"
	"github.com/nfrund/mood2move/internal/domain"
	"github.com/nfrund/mood2move/internal/middleware"
	"github.com/nfrund/mood2move/internal/view"
	"github.com/nfrund/mood2move/web/src/templates/layouts"
	"github.com/nfrund/mood2move/web/src/templates/pages"
)

// AuthHandler handles the login page.
type AuthHandler struct {
	pageBase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *account.Service, storeFor middleware.StoreFunc, routes Routes) *AuthHandler {
	return &AuthHandler{pageBase{account: svc, storeFor: storeFor, routes: routes}}
}

// LoginGet renders the login page, pre-filling the identifier from a failed attempt.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	identifier := view.PopFormIdentifier(c)

	content := pages.Login(pages.LoginData{
		Action:     h.routes.Login,
		Identifier: identifier,
	})
	return c.Render(http.StatusOK, "", layouts.Base(c.Request().Context(), h.layout(c, "Login"), content))
}

// LoginPost exchanges the submitted credentials for a token pair and stores it.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Please enter your username or email and password.")
		return c.Redirect(http.StatusSeeOther, h.routes.Login)
	}
	if err := c.Validate(&req); err != nil {
		view.SetFormIdentifier(c, req.Identifier)
		view.SetFlashError(c, "Please enter your username or email and password.")
		return c.Redirect(http.StatusSeeOther, h.routes.Login)
	}

	if err := h.account.Login(ctx, h.storeFor(c), req.Identifier, req.Password); err != nil {
		view.SetFormIdentifier(c, req.Identifier)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			logger.Warn("Failed login attempt", "identifier", req.Identifier)
			view.SetFlashError(c, "Invalid username/email or password.")
		} else {
			logger.Error("Login failed", "error", err)
			view.SetFlashError(c, "We could not sign you in right now. Please try again.")
		}
		return c.Redirect(http.StatusSeeOther, h.routes.Login)
	}

	return c.Redirect(http.StatusSeeOther, h.routes.Profile)
}
