package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/mood2move/internal/app"
	"github.com/nfrund/mood2move/internal/config"
	"github.com/nfrund/mood2move/internal/logging"
	"github.com/nfrund/mood2move/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	deps, err := app.ResolveDependencies(app.NewInjector(cfg))
	if err != nil {
		slog.Error("Failed to wire services", "error", err)
		os.Exit(1)
	}

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	// Create a new server instance.
	s := server.New(cfg, deps, app.NewModules(deps))

	// Register all application routes.
	if err := s.RegisterRoutes(ctx); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}

	// Start the server.
	if err := s.Start(ctx); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
