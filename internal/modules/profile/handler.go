package profile

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/account"
	"github.com/nfrund/mood2move/internal/middleware"
	"github.com/nfrund/mood2move/internal/modules/profile/view"
	"github.com/nfrund/mood2move/internal/rendering"
	gview "github.com/nfrund/mood2move/internal/view"
	"github.com/nfrund/mood2move/web/src/templates/layouts"
	"github.com/nfrund/mood2move/web/src/templates/partials"
	g "maragu.dev/gomponents"
)

const pageTitle = "Profile"

// Routes are the URLs the handler renders into pages and redirects to.
type Routes struct {
	Page    string
	Details string
	Logout  string
	Login   string
	Home    string
}

// Handler handles requests for the profile view.
type Handler struct {
	account  *account.Service
	renderer rendering.Renderer
	storeFor middleware.StoreFunc
	routes   Routes
}

// NewHandler creates a new profile Handler.
func NewHandler(svc *account.Service, renderer rendering.Renderer, storeFor middleware.StoreFunc, routes Routes) *Handler {
	return &Handler{
		account:  svc,
		renderer: renderer,
		storeFor: storeFor,
		routes:   routes,
	}
}

// Get renders the profile page shell. Its body is the loading placeholder and
// nothing else; the page requests the details itself once displayed.
func (h *Handler) Get(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Bare(pageTitle, view.Loading(h.routes.Details)))
}

// Details performs the single profile fetch. Any failure sends the visitor to
// the login page without telling them why.
func (h *Handler) Details(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	profile, err := h.account.LoadProfile(ctx, h.storeFor(c))
	if account.Outcome(err) == account.StateRedirected {
		logger.Info("profile unavailable, redirecting to login", "error", err)
		return gview.Redirect(c, h.routes.Login)
	}

	details := view.Details(view.NewData(profile, h.routes.Logout))
	if gview.IsHTMX(c) {
		// Replaces the placeholder, so it brings its own navbar.
		return h.renderer.RenderPage(c, http.StatusOK, g.Group{partials.Navbar(h.nav()), details})
	}
	// Opened directly, without the shell: serve it as a full page.
	page := layouts.Page{Title: pageTitle, Flashes: gview.GetFlashData(c), Nav: h.nav()}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(ctx, page, details))
}

// Logout clears both stored tokens and sends the visitor home with a full
// page load, so every credential-dependent element is rebuilt.
func (h *Handler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.account.Logout(ctx, h.storeFor(c)); err != nil {
		middleware.FromContext(ctx).Error("failed to clear credentials on logout", "error", err)
		gview.SetFlashError(c, "We could not log you out. Please try again.")
	} else {
		gview.SetFlashSuccess(c, "You have been logged out.")
	}
	return gview.Redirect(c, h.routes.Home)
}

func (h *Handler) nav() partials.NavData {
	return partials.NavData{
		Authenticated: true,
		HomeURL:       h.routes.Home,
		LoginURL:      h.routes.Login,
		ProfileURL:    h.routes.Page,
	}
}
