package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/mood2move/web/src/templates/partials"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyFormID   = "form_identifier"
)

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if sess == nil {
		c.Logger().Warn("flash session unavailable: ", err)
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// SetFormIdentifier remembers the identifier typed into the login form so it
// can be pre-filled after a failed attempt.
func SetFormIdentifier(c echo.Context, identifier string) {
	setFlash(c, flashKeyFormID, identifier)
}

// PopFormIdentifier returns and clears the remembered login identifier.
func PopFormIdentifier(c echo.Context) string {
	values := popFlashes(c, flashKeyFormID)
	if len(values[flashKeyFormID]) == 0 {
		return ""
	}
	return values[flashKeyFormID][0]
}

// GetFlashData retrieves and clears the success and error flash messages.
func GetFlashData(c echo.Context) partials.FlashData {
	values := popFlashes(c, flashKeySuccess, flashKeyError)
	return partials.FlashData{
		Success: values[flashKeySuccess],
		Error:   values[flashKeyError],
	}
}

// popFlashes reads the flashes for the given keys. Flashes() clears them from
// the session, so the session is saved whenever something was read.
func popFlashes(c echo.Context, keys ...string) map[string][]string {
	out := make(map[string][]string, len(keys))

	sess, _ := session.Get(flashSessionName, c)
	if sess == nil {
		return out
	}

	found := false
	for _, key := range keys {
		for _, f := range sess.Flashes(key) {
			if msg, ok := f.(string); ok {
				out[key] = append(out[key], msg)
				found = true
			}
		}
	}
	if found {
		_ = sess.Save(c.Request(), c.Response())
	}
	return out
}
