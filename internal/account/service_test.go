package account_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/nfrund/mood2move/internal/account"
	"github.com/nfrund/mood2move/internal/credentials"
	"github.com/nfrund/mood2move/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchProfile(ctx context.Context, token string) (*domain.Profile, error) {
	args := m.Called(ctx, token)
	p, _ := args.Get(0).(*domain.Profile)
	return p, args.Error(1)
}

type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) ObtainToken(ctx context.Context, identifier, password string) (*domain.TokenPair, error) {
	args := m.Called(ctx, identifier, password)
	p, _ := args.Get(0).(*domain.TokenPair)
	return p, args.Error(1)
}

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) {
	return "", errors.New("disk on fire")
}
func (brokenStore) Set(context.Context, string, string) error { return errors.New("disk on fire") }
func (brokenStore) Remove(context.Context, ...string) error   { return errors.New("disk on fire") }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStore(t *testing.T, values map[string]string) domain.CredentialStore {
	t.Helper()
	store := credentials.NewFileStore(afero.NewMemMapFs(), "/creds.json")
	for k, v := range values {
		require.NoError(t, store.Set(context.Background(), k, v))
	}
	return store
}

func TestLoadProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("no token never reaches the backend", func(t *testing.T) {
		fetcher := new(MockFetcher)
		svc := account.NewService(fetcher, nil, quietLogger())

		_, err := svc.LoadProfile(ctx, newStore(t, nil))

		require.ErrorIs(t, err, domain.ErrUnauthenticated)
		fetcher.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything)
		assert.Equal(t, account.StateRedirected, account.Outcome(err))
	})

	t.Run("a stored token is sent exactly once", func(t *testing.T) {
		want := &domain.Profile{Username: "alice", Email: "alice@example.com"}
		fetcher := new(MockFetcher)
		fetcher.On("FetchProfile", ctx, "tok-1").Return(want, nil).Once()
		svc := account.NewService(fetcher, nil, quietLogger())

		got, err := svc.LoadProfile(ctx, newStore(t, map[string]string{domain.AccessTokenKey: "tok-1"}))

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, account.StateDisplaying, account.Outcome(err))
		fetcher.AssertExpectations(t)
		fetcher.AssertNumberOfCalls(t, "FetchProfile", 1)
	})

	t.Run("backend failures collapse into ErrUnauthenticated", func(t *testing.T) {
		fetcher := new(MockFetcher)
		fetcher.On("FetchProfile", ctx, "tok-1").Return(nil, errors.New("status 500")).Once()
		svc := account.NewService(fetcher, nil, quietLogger())

		_, err := svc.LoadProfile(ctx, newStore(t, map[string]string{domain.AccessTokenKey: "tok-1"}))

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		fetcher.AssertNumberOfCalls(t, "FetchProfile", 1)
	})

	t.Run("an unreadable store is treated as unauthenticated", func(t *testing.T) {
		fetcher := new(MockFetcher)
		svc := account.NewService(fetcher, nil, quietLogger())

		_, err := svc.LoadProfile(ctx, brokenStore{})

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		fetcher.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc := account.NewService(new(MockFetcher), nil, quietLogger())

	t.Run("clears both keys", func(t *testing.T) {
		store := newStore(t, map[string]string{
			domain.AccessTokenKey:  "a",
			domain.RefreshTokenKey: "r",
		})

		require.NoError(t, svc.Logout(ctx, store))

		access, _ := store.Get(ctx, domain.AccessTokenKey)
		refresh, _ := store.Get(ctx, domain.RefreshTokenKey)
		assert.Empty(t, access)
		assert.Empty(t, refresh)
	})

	t.Run("succeeds with nothing stored", func(t *testing.T) {
		assert.NoError(t, svc.Logout(ctx, newStore(t, nil)))
	})

	t.Run("reports store failures", func(t *testing.T) {
		assert.ErrorContains(t, svc.Logout(ctx, brokenStore{}), "clearing credentials")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the issued pair", func(t *testing.T) {
		issuer := new(MockIssuer)
		issuer.On("ObtainToken", ctx, "alice", "pw").Return(&domain.TokenPair{Access: "a", Refresh: "r"}, nil)
		svc := account.NewService(new(MockFetcher), issuer, quietLogger())
		store := newStore(t, nil)

		require.NoError(t, svc.Login(ctx, store, "alice", "pw"))

		ok, err := svc.HasCredential(ctx, store)
		require.NoError(t, err)
		assert.True(t, ok)
		refresh, _ := store.Get(ctx, domain.RefreshTokenKey)
		assert.Equal(t, "r", refresh)
	})

	t.Run("propagates rejected credentials", func(t *testing.T) {
		issuer := new(MockIssuer)
		issuer.On("ObtainToken", ctx, "alice", "bad").Return(nil, domain.ErrInvalidCredentials)
		svc := account.NewService(new(MockFetcher), issuer, quietLogger())
		store := newStore(t, nil)

		err := svc.Login(ctx, store, "alice", "bad")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		ok, _ := svc.HasCredential(ctx, store)
		assert.False(t, ok)
	})

	t.Run("unavailable without an issuer", func(t *testing.T) {
		svc := account.NewService(new(MockFetcher), nil, quietLogger())
		assert.ErrorIs(t, svc.Login(ctx, newStore(t, nil), "a", "b"), account.ErrLoginUnavailable)
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", account.StateLoading.String())
	assert.Equal(t, "displaying", account.StateDisplaying.String())
	assert.Equal(t, "redirected", account.StateRedirected.String())
}
