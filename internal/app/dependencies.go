package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/account"
	"github.com/nfrund/mood2move/internal/config"
	"github.com/nfrund/mood2move/internal/credentials"
	"github.com/nfrund/mood2move/internal/domain"
	"github.com/nfrund/mood2move/internal/middleware"
	"github.com/nfrund/mood2move/internal/modules/profile"
	"github.com/nfrund/mood2move/internal/profileapi"
	"github.com/nfrund/mood2move/internal/rendering"
	"github.com/samber/do/v2"
)

// UserAgent identifies this client to the backend.
const UserAgent = "mood2move-web"

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Account  *account.Service
	Renderer rendering.Renderer
	StoreFor middleware.StoreFunc
}

// NewInjector builds the service container for a configuration. Services are
// created lazily on first use.
func NewInjector(cfg config.Provider) *do.RootScope {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.Provide(i, newHTTPClient)
	do.Provide(i, newProfileAPI)
	do.Provide(i, newAccountService)
	do.Provide(i, newRenderer)
	return i
}

// ResolveDependencies pulls the module dependencies out of the container.
func ResolveDependencies(i do.Injector) (Dependencies, error) {
	svc, err := do.Invoke[*account.Service](i)
	if err != nil {
		return Dependencies{}, fmt.Errorf("resolving account service: %w", err)
	}
	renderer, err := do.Invoke[rendering.Renderer](i)
	if err != nil {
		return Dependencies{}, fmt.Errorf("resolving renderer: %w", err)
	}
	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return Dependencies{}, fmt.Errorf("resolving config: %w", err)
	}
	return Dependencies{
		Account:  svc,
		Renderer: renderer,
		StoreFor: SessionStoreFor(cfg),
	}, nil
}

// SessionStoreFor keeps web credentials in the visitor's cookie session,
// marked Secure when the app is served over https.
func SessionStoreFor(cfg config.Provider) middleware.StoreFunc {
	secure := cfg.GetSecureCookies()
	return func(c echo.Context) domain.CredentialStore {
		return credentials.NewSessionStore(c, secure)
	}
}

// newHTTPClient has no timeout of its own; request contexts bound each call.
func newHTTPClient(do.Injector) (*http.Client, error) {
	return &http.Client{}, nil
}

func newProfileAPI(i do.Injector) (*profileapi.Client, error) {
	cfg := do.MustInvoke[config.Provider](i)
	httpClient := do.MustInvoke[*http.Client](i)
	return profileapi.NewClient(httpClient,
		profileapi.WithBaseURL(cfg.GetAPIBaseURL()),
		profileapi.WithUserAgent(UserAgent),
	), nil
}

func newAccountService(i do.Injector) (*account.Service, error) {
	client, err := do.Invoke[*profileapi.Client](i)
	if err != nil {
		return nil, err
	}
	return account.NewService(client, client, slog.Default().With("component", "account")), nil
}

func newRenderer(do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

// profileDeps creates the dependency struct for the profile module.
func profileDeps(deps Dependencies) profile.Dependencies {
	return profile.Dependencies{
		Account:  deps.Account,
		Renderer: deps.Renderer,
		StoreFor: deps.StoreFor,
	}
}
