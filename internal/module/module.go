package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/registry"
)

// Module defines the contract for a self-contained application feature.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Prefix is the URL path the module's routes are mounted under.
	Prefix() string

	// Register publishes the module's services to the registry.
	Register(reg *registry.Registry) error

	// Boot runs after every module has registered; it sets up routes.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases the module's resources during graceful shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op implementations for the optional phases.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }

// Start registers every module and then boots each one under its prefix.
// All Register calls complete before the first Boot.
func Start(ctx context.Context, e *echo.Echo, reg *registry.Registry, modules []Module) error {
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("registering module %s: %w", m.Name(), err)
		}
	}
	for _, m := range modules {
		slog.Debug("Booting module", "module", m.Name(), "prefix", m.Prefix())
		if err := m.Boot(ctx, e.Group(m.Prefix()), reg); err != nil {
			return fmt.Errorf("booting module %s: %w", m.Name(), err)
		}
	}
	return nil
}

// Stop shuts modules down in reverse start order and joins their errors.
func Stop(ctx context.Context, modules []Module) error {
	var errs []error
	for i := len(modules) - 1; i >= 0; i-- {
		if err := modules[i].Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down module %s: %w", modules[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}
