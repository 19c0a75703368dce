package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/account"
	"github.com/nfrund/mood2move/internal/middleware"
	"github.com/nfrund/mood2move/web/src/templates/layouts"
	"github.com/nfrund/mood2move/web/src/templates/pages"
)

// HomeHandler handles the landing and about pages.
type HomeHandler struct {
	pageBase
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(svc *account.Service, storeFor middleware.StoreFunc, routes Routes) *HomeHandler {
	return &HomeHandler{pageBase{account: svc, storeFor: storeFor, routes: routes}}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	page := h.layout(c, "Home")
	content := pages.Home(pages.HomeData{
		Authenticated: page.Nav.Authenticated,
		LoginURL:      h.routes.Login,
		ProfileURL:    h.routes.Profile,
	})
	return c.Render(http.StatusOK, "", layouts.Base(c.Request().Context(), page, content))
}

// AboutGet renders the about page.
func (h *HomeHandler) AboutGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", layouts.Base(c.Request().Context(), h.layout(c, "About"), pages.About()))
}
