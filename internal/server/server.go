package server

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/mood2move/internal/app"
	"github.com/nfrund/mood2move/internal/config"
	"github.com/nfrund/mood2move/internal/handlers"
	"github.com/nfrund/mood2move/internal/middleware"
	"github.com/nfrund/mood2move/internal/module"
	"github.com/nfrund/mood2move/internal/registry"
	"github.com/nfrund/mood2move/internal/rendering"
	"github.com/nfrund/mood2move/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry
	deps     app.Dependencies
	modules  []module.Module
}

// New creates a new Server instance with its middleware stack in place.
// Routes are added by RegisterRoutes.
func New(cfg config.Provider, deps app.Dependencies, modules []module.Module) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GetSecureCookies(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	} else {
		e.Renderer = rendering.NewUniversalRenderer()
	}
	e.Validator = handlers.NewValidator()

	setupErrorHandling(e)

	return &Server{
		E:        e,
		Cfg:      cfg,
		Registry: registry.New(cfg),
		deps:     deps,
		modules:  modules,
	}
}

// setupErrorHandling logs unexpected errors with a stack trace before handing
// them to echo's default handler. *echo.HTTPError values are expected and
// are not logged here.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if _, ok := err.(*echo.HTTPError); !ok {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				slog.String("error", err.Error()),
				slog.String("stack_trace", string(debug.Stack())),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
