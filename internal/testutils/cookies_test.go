package testutils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nfrund/mood2move/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	http.SetCookie(rec, &http.Cookie{Name: "a", Value: "1"})
	http.SetCookie(rec, &http.Cookie{Name: "b", Value: "x"})
	http.SetCookie(rec, &http.Cookie{Name: "a", Value: "2"})

	cookies := testutils.LatestCookies(rec)
	require.Len(t, cookies, 2)
	assert.Equal(t, "a", cookies[0].Name)
	assert.Equal(t, "2", cookies[0].Value)
	assert.Equal(t, "x", cookies[1].Value)
}

func TestMergeCookies(t *testing.T) {
	jar := []*http.Cookie{{Name: "keep", Value: "1"}, {Name: "gone", Value: "1"}}
	rec := httptest.NewRecorder()
	http.SetCookie(rec, &http.Cookie{Name: "gone", MaxAge: -1})
	http.SetCookie(rec, &http.Cookie{Name: "new", Value: "n"})

	cookies := testutils.MergeCookies(jar, rec)
	require.Len(t, cookies, 2)
	assert.Equal(t, "keep", cookies[0].Name)
	assert.Equal(t, "new", cookies[1].Name)
}
