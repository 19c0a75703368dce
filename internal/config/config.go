package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	defaultAddr       = ":8080"
	defaultAPIBaseURL = "http://127.0.0.1:8000"
	defaultLoginRoute = "/loginsignup"
	defaultHomeRoute  = "/"
	defaultLogFormat  = "text"
	defaultLogLevel   = "info"
)

// Provider exposes read access to the application configuration. Handlers and
// services depend on this rather than on the concrete Config.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetAPIBaseURL() string
	GetSessionSecret() string
	GetLoginRoute() string
	GetHomeRoute() string
	GetLogFormat() string
	GetLogLevel() string
	GetSecureCookies() bool
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string `validate:"required"`
	AppBaseURL    string `validate:"omitempty,url"`
	APIBaseURL    string `validate:"required,url"`
	SessionSecret string `validate:"required,min=16"`
	LoginRoute    string `validate:"required,startswith=/"`
	HomeRoute     string `validate:"required,startswith=/"`
	LogFormat     string `validate:"oneof=text json"`
	LogLevel      string `validate:"oneof=debug info warn error"`
}

// New loads configuration from a .env file, if present, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppAddr:       envOr("APP_ADDR", defaultAddr),
		AppBaseURL:    os.Getenv("APP_BASE_URL"),
		APIBaseURL:    envOr("API_BASE_URL", defaultAPIBaseURL),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LoginRoute:    envOr("LOGIN_ROUTE", defaultLoginRoute),
		HomeRoute:     envOr("HOME_ROUTE", defaultHomeRoute),
		LogFormat:     envOr("LOG_FORMAT", defaultLogFormat),
		LogLevel:      envOr("LOG_LEVEL", defaultLogLevel),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAppAddr() string       { return c.AppAddr }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetAPIBaseURL() string    { return c.APIBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetLoginRoute() string    { return c.LoginRoute }
func (c *Config) GetHomeRoute() string     { return c.HomeRoute }
func (c *Config) GetLogFormat() string     { return c.LogFormat }
func (c *Config) GetLogLevel() string      { return c.LogLevel }

// GetSecureCookies reports whether the public base URL is https. The app may
// sit behind a TLS-terminating proxy, so the request itself cannot tell.
func (c *Config) GetSecureCookies() bool {
	return strings.HasPrefix(strings.ToLower(c.AppBaseURL), "https://")
}
