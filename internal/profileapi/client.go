package profileapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nfrund/mood2move/internal/domain"
)

const (
	defaultBaseURL = "http://127.0.0.1:8000"
	profilePath    = "/api/profile/"
	tokenPath      = "/api/token/"
	userAgent      = "mood2move-web"
)

var (
	// ErrUnauthorized is returned when the backend rejects the bearer token.
	ErrUnauthorized = errors.New("backend rejected credentials")
	// ErrUpstream is returned for any other non-success status.
	ErrUpstream = errors.New("backend request failed")
)

// StatusError records the HTTP status of a failed backend call.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: status %d", e.Err, e.StatusCode)
}

func (e *StatusError) Unwrap() error { return e.Err }

// Client talks to the Mood2Move REST backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the backend base URL, e.g. "http://127.0.0.1:8000".
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithUserAgent overrides the User-Agent header sent to the backend.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new backend client. A nil httpClient uses http.DefaultClient.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		userAgent:  userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ domain.ProfileFetcher = (*Client)(nil)
	_ domain.TokenIssuer    = (*Client)(nil)
)

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpClient.Do(req)
}

func statusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &StatusError{StatusCode: resp.StatusCode, Err: ErrUnauthorized}
	default:
		return &StatusError{StatusCode: resp.StatusCode, Err: ErrUpstream}
	}
}

// FetchProfile returns the profile of the user the bearer token belongs to.
func (c *Client) FetchProfile(ctx context.Context, token string) (*domain.Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, profilePath, nil, token)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var profile *domain.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("decoding profile response: %w", ErrUpstream)
	}
	return profile, nil
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ObtainToken exchanges a username or email and password for a token pair.
func (c *Client) ObtainToken(ctx context.Context, identifier, password string) (*domain.TokenPair, error) {
	payload, err := json.Marshal(tokenRequest{Username: identifier, Password: password})
	if err != nil {
		return nil, fmt.Errorf("encoding token request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, tokenPath, bytes.NewReader(payload), "")
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrInvalidCredentials
	case resp.StatusCode != http.StatusOK:
		return nil, statusError(resp)
	}

	var pair domain.TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		return nil, fmt.Errorf("decoding token response: %w", ErrUpstream)
	}
	return &pair, nil
}
