package module_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/config"
	"github.com/nfrund/mood2move/internal/module"
	"github.com/nfrund/mood2move/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var greetingKey = registry.Key[string]("test.greeting")

// recordingModule appends its lifecycle calls to a shared log.
type recordingModule struct {
	module.BaseModule
	name        string
	log         *[]string
	registerErr error
	shutdownErr error
}

func (m *recordingModule) Name() string   { return m.name }
func (m *recordingModule) Prefix() string { return "/" + m.name }

func (m *recordingModule) Register(reg *registry.Registry) error {
	*m.log = append(*m.log, "register "+m.name)
	if m.registerErr != nil {
		return m.registerErr
	}
	registry.Set(reg, registry.Key[string]("test."+m.name), m.name)
	return nil
}

func (m *recordingModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	*m.log = append(*m.log, "boot "+m.name)
	greeting, _ := registry.Get(reg, greetingKey)
	g.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, greeting+" from "+m.name)
	})
	return nil
}

func (m *recordingModule) Shutdown(ctx context.Context) error {
	*m.log = append(*m.log, "shutdown "+m.name)
	return m.shutdownErr
}

func TestStart_RegistersAllBeforeBooting(t *testing.T) {
	var calls []string
	modules := []module.Module{
		&recordingModule{name: "first", log: &calls},
		&recordingModule{name: "second", log: &calls},
	}

	e := echo.New()
	reg := registry.New(&config.Config{})
	registry.Set(reg, greetingKey, "hello")

	require.NoError(t, module.Start(context.Background(), e, reg, modules))
	assert.Equal(t, []string{"register first", "register second", "boot first", "boot second"}, calls)

	req := httptest.NewRequest(http.MethodGet, "/second", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "hello from second", rec.Body.String())
}

func TestStart_StopsOnRegisterError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	modules := []module.Module{
		&recordingModule{name: "broken", log: &calls, registerErr: boom},
		&recordingModule{name: "other", log: &calls},
	}

	err := module.Start(context.Background(), echo.New(), registry.New(&config.Config{}), modules)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"register broken"}, calls)
}

func TestStop_ReverseOrderAndJoinsErrors(t *testing.T) {
	var calls []string
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	modules := []module.Module{
		&recordingModule{name: "a", log: &calls, shutdownErr: errA},
		&recordingModule{name: "b", log: &calls, shutdownErr: errB},
		&recordingModule{name: "c", log: &calls},
	}

	err := module.Stop(context.Background(), modules)
	assert.Equal(t, []string{"shutdown c", "shutdown b", "shutdown a"}, calls)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}
