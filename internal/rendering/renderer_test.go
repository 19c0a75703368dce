package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()
	ctx := context.Background()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(ctx, h.P(g.Text("Loading profile...")))
		require.NoError(t, err)
		assert.Equal(t, "<p>Loading profile...</p>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<span>templ</span>")
			return err
		})
		out, err := r.RenderComponent(ctx, comp)
		require.NoError(t, err)
		assert.Equal(t, "<span>templ</span>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderComponent(ctx, 42)
		assert.ErrorContains(t, err, "unsupported component type int")
	})
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()

	t.Run("writes html with status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, NewUniversalRenderer().RenderPage(c, http.StatusAccepted, h.Div(g.Text("ok"))))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		assert.Equal(t, "<div>ok</div>", rec.Body.String())
	})

	t.Run("echo Render delegates to the component", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, c.Render(http.StatusOK, "", h.Span(g.Text("via echo"))))

		assert.Equal(t, "<span>via echo</span>", rec.Body.String())
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	})
}
