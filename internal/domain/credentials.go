package domain

import "context"

// Keys under which the credential pair is kept in a CredentialStore.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// TokenPair is the access/refresh pair handed out by the backend's token endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// CredentialStore is the client-side persistent storage for credentials.
// Get returns an empty string, not an error, for a key that is not set.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
}

// TokenIssuer exchanges user credentials for a token pair. It lives in the
// domain because the login flow requires it, not because tokens are issued here.
type TokenIssuer interface {
	ObtainToken(ctx context.Context, identifier, password string) (*TokenPair, error)
}
