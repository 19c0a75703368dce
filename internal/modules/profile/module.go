package profile

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/account"
	"github.com/nfrund/mood2move/internal/middleware"
	"github.com/nfrund/mood2move/internal/module"
	"github.com/nfrund/mood2move/internal/registry"
	"github.com/nfrund/mood2move/internal/rendering"
)

// BasePath is where the profile view is mounted.
const BasePath = "/profile"

const (
	detailsPath = "/details"
	logoutPath  = "/logout"
)

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Account  *account.Service
	Renderer rendering.Renderer
	StoreFor middleware.StoreFunc
}

// Module serves the current user's profile page and the logout action.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

// New creates a new profile module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string   { return "profile" }
func (m *Module) Prefix() string { return BasePath }

// Register publishes the module's URLs for the navbar and home page.
func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, registry.ProfileRoutesKey, registry.ProfileRoutes{
		Page:   BasePath,
		Logout: BasePath + logoutPath,
	})
	return nil
}

// Boot mounts the routes. Logout is deliberately outside the credential
// guard so it works whatever state the session is in.
func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	m.handler = NewHandler(m.deps.Account, m.deps.Renderer, m.deps.StoreFor, Routes{
		Page:    BasePath,
		Details: BasePath + detailsPath,
		Logout:  BasePath + logoutPath,
		Login:   cfg.GetLoginRoute(),
		Home:    cfg.GetHomeRoute(),
	})

	guard := middleware.RequireCredential(cfg.GetLoginRoute(), m.deps.StoreFor)
	group.Use(noStore)
	group.GET("", m.handler.Get, guard)
	group.GET(detailsPath, m.handler.Details, guard)
	group.POST(logoutPath, m.handler.Logout)
	return nil
}

// noStore keeps credential-dependent responses out of browser and proxy caches.
func noStore(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
		return next(c)
	}
}
