package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/account"
	"github.com/nfrund/mood2move/internal/middleware"
	"github.com/nfrund/mood2move/internal/view"
	"github.com/nfrund/mood2move/web/src/templates/layouts"
	"github.com/nfrund/mood2move/web/src/templates/partials"
)

// Routes are the application URLs the handlers link and redirect to.
type Routes struct {
	Home    string
	Login   string
	Profile string
}

// pageBase carries what every full page needs to build its navbar.
type pageBase struct {
	account  *account.Service
	storeFor middleware.StoreFunc
	routes   Routes
}

// authenticated reports whether the visitor holds an access token. A session
// that cannot be read counts as logged out.
func (p pageBase) authenticated(c echo.Context) bool {
	ctx := c.Request().Context()
	ok, err := p.account.HasCredential(ctx, p.storeFor(c))
	if err != nil {
		middleware.FromContext(ctx).Warn("could not read credential session", "error", err)
		return false
	}
	return ok
}

func (p pageBase) layout(c echo.Context, title string) layouts.Page {
	return layouts.Page{
		Title:   title,
		Flashes: view.GetFlashData(c),
		Nav: partials.NavData{
			Authenticated: p.authenticated(c),
			HomeURL:       p.routes.Home,
			LoginURL:      p.routes.Login,
			ProfileURL:    p.routes.Profile,
		},
	}
}
