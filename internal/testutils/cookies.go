package testutils

import (
	"net/http"
	"net/http/httptest"
)

// LatestCookies keeps only the last Set-Cookie per name, as a browser would.
// Every session save writes its own header, so a handler that saves twice
// emits the same cookie twice.
func LatestCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	return latest(rec.Result().Cookies())
}

// MergeCookies applies the Set-Cookie headers of rec over jar and drops the
// cookies the response expired.
func MergeCookies(jar []*http.Cookie, rec *httptest.ResponseRecorder) []*http.Cookie {
	all := append(append([]*http.Cookie{}, jar...), rec.Result().Cookies()...)
	var out []*http.Cookie
	for _, ck := range latest(all) {
		if ck.MaxAge >= 0 {
			out = append(out, ck)
		}
	}
	return out
}

func latest(cookies []*http.Cookie) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	var order []string
	for _, ck := range cookies {
		if _, seen := byName[ck.Name]; !seen {
			order = append(order, ck.Name)
		}
		byName[ck.Name] = ck
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}
