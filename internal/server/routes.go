package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/handlers"
	"github.com/nfrund/mood2move/internal/middleware"
	"github.com/nfrund/mood2move/internal/module"
	"github.com/nfrund/mood2move/internal/registry"
)

// loginAttemptsPerMinute bounds password guessing from a single address.
const loginAttemptsPerMinute = 10

// RegisterRoutes boots the modules and sets up the top-level routes.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	if err := module.Start(ctx, s.E, s.Registry, s.modules); err != nil {
		return fmt.Errorf("starting modules: %w", err)
	}

	routes := handlers.Routes{
		Home:  s.Cfg.GetHomeRoute(),
		Login: s.Cfg.GetLoginRoute(),
	}
	if profileRoutes, ok := registry.Get(s.Registry, registry.ProfileRoutesKey); ok {
		routes.Profile = profileRoutes.Page
	}

	homeHandler := handlers.NewHomeHandler(s.deps.Account, s.deps.StoreFor, routes)
	authHandler := handlers.NewAuthHandler(s.deps.Account, s.deps.StoreFor, routes)
	rateLimiter := middleware.RateLimiter(loginAttemptsPerMinute)

	s.E.GET(routes.Home, homeHandler.HomeGet)
	if routes.Home != "/" {
		s.E.GET("/", func(c echo.Context) error {
			return c.Redirect(http.StatusMovedPermanently, routes.Home)
		})
	}
	s.E.GET("/about", homeHandler.AboutGet)

	s.E.GET(routes.Login, authHandler.LoginGet)
	s.E.POST(routes.Login, authHandler.LoginPost, rateLimiter)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	return nil
}
