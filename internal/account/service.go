// Package account holds the profile view's behaviour independent of how it
// is presented: credential lookup, the single profile fetch, login and logout.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nfrund/mood2move/internal/domain"
)

// Service coordinates the credential store with the backend.
type Service struct {
	fetcher domain.ProfileFetcher
	issuer  domain.TokenIssuer
	logger  *slog.Logger
}

// NewService creates a new Service. issuer may be nil when login is not offered.
func NewService(fetcher domain.ProfileFetcher, issuer domain.TokenIssuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fetcher: fetcher, issuer: issuer, logger: logger}
}

// HasCredential reports whether an access token is present.
func (s *Service) HasCredential(ctx context.Context, store domain.CredentialStore) (bool, error) {
	token, err := store.Get(ctx, domain.AccessTokenKey)
	if err != nil {
		return false, fmt.Errorf("reading access token: %w", err)
	}
	return token != "", nil
}

// LoadProfile fetches the current user's profile. Without a stored access
// token it fails immediately and the backend is never contacted. Every
// failure satisfies errors.Is(err, domain.ErrUnauthenticated).
func (s *Service) LoadProfile(ctx context.Context, store domain.CredentialStore) (*domain.Profile, error) {
	token, err := store.Get(ctx, domain.AccessTokenKey)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read access token", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: no access token", domain.ErrUnauthenticated)
	}

	profile, err := s.fetcher.FetchProfile(ctx, token)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to fetch user profile", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: empty profile response", domain.ErrUnauthenticated)
	}
	return profile, nil
}

// Logout removes both credentials regardless of any prior state.
func (s *Service) Logout(ctx context.Context, store domain.CredentialStore) error {
	if err := store.Remove(ctx, domain.AccessTokenKey, domain.RefreshTokenKey); err != nil {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	return nil
}

// ErrLoginUnavailable is returned by Login when no token issuer is configured.
var ErrLoginUnavailable = errors.New("login is not configured")

// Login exchanges credentials for a token pair and stores both tokens.
func (s *Service) Login(ctx context.Context, store domain.CredentialStore, identifier, password string) error {
	if s.issuer == nil {
		return ErrLoginUnavailable
	}

	pair, err := s.issuer.ObtainToken(ctx, identifier, password)
	if err != nil {
		return fmt.Errorf("obtaining token: %w", err)
	}

	if err := store.Set(ctx, domain.AccessTokenKey, pair.Access); err != nil {
		return fmt.Errorf("storing access token: %w", err)
	}
	if err := store.Set(ctx, domain.RefreshTokenKey, pair.Refresh); err != nil {
		return fmt.Errorf("storing refresh token: %w", err)
	}
	return nil
}
