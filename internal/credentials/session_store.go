package credentials

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/internal/domain"
)

// SessionName is the cookie session that holds the credential pair.
const SessionName = "credentials"

const sessionMaxAge = 86400 * 7 // 7 days

// SessionStore keeps credentials in the visitor's encrypted cookie session.
// It is bound to a single request.
type SessionStore struct {
	c      echo.Context
	secure bool
}

var _ domain.CredentialStore = (*SessionStore)(nil)

// FromContext returns the credential store for the current request. The
// session middleware must run before any handler that uses it.
func FromContext(c echo.Context) *SessionStore {
	return &SessionStore{c: c}
}

// NewSessionStore is FromContext with the cookie's Secure flag set by secure.
func NewSessionStore(c echo.Context, secure bool) *SessionStore {
	return &SessionStore{c: c, secure: secure}
}

// load returns the credential session. A cookie that fails to decode (for
// example after a secret rotation) yields a fresh, empty session.
func (s *SessionStore) load() (*sessions.Session, error) {
	sess, err := session.Get(SessionName, s.c)
	if sess == nil {
		return nil, fmt.Errorf("loading credential session: %w", err)
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
	return sess, nil
}

// Get returns the stored value for key, or "" when it is not set.
func (s *SessionStore) Get(_ context.Context, key string) (string, error) {
	sess, err := s.load()
	if err != nil {
		return "", err
	}
	v, _ := sess.Values[key].(string)
	return v, nil
}

// Set stores value under key and writes the session cookie.
func (s *SessionStore) Set(_ context.Context, key, value string) error {
	sess, err := s.load()
	if err != nil {
		return err
	}
	sess.Values[key] = value
	if err := sess.Save(s.c.Request(), s.c.Response()); err != nil {
		return fmt.Errorf("saving credential session: %w", err)
	}
	return nil
}

// Remove deletes the given keys. When nothing is left the cookie itself is expired.
func (s *SessionStore) Remove(_ context.Context, keys ...string) error {
	sess, err := s.load()
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(sess.Values, key)
	}
	if len(sess.Values) == 0 {
		sess.Options.MaxAge = -1
	}
	if err := sess.Save(s.c.Request(), s.c.Response()); err != nil {
		return fmt.Errorf("saving credential session: %w", err)
	}
	return nil
}
