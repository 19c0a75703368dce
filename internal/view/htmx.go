package view

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// htmx request/response headers.
const (
	HeaderHXRequest  = "HX-Request"
	HeaderHXRedirect = "HX-Redirect"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get(HeaderHXRequest) == "true"
}

// Redirect performs a full-page navigation to url. Plain requests get a
// 303 See Other; htmx requests get an HX-Redirect header so the browser
// leaves the page instead of swapping the response into it.
func Redirect(c echo.Context, url string) error {
	if IsHTMX(c) {
		c.Response().Header().Set(HeaderHXRedirect, url)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, url)
}
