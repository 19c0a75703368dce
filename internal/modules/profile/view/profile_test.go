package view

import (
	"bytes"
	"testing"

	"github.com/nfrund/mood2move/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, node g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	return buf.String()
}

func TestLoading(t *testing.T) {
	out := render(t, Loading("/profile/details"))

	assert.Contains(t, out, "Loading profile...")
	assert.Contains(t, out, `hx-get="/profile/details"`)
	assert.Contains(t, out, `hx-trigger="load"`)
	assert.Contains(t, out, `hx-swap="outerHTML"`)
	assert.NotContains(t, out, "<table")
}

func TestDetails(t *testing.T) {
	t.Run("shows the returned values", func(t *testing.T) {
		p := &domain.Profile{Username: "alice", Email: "alice@example.com", PhoneNumber: "+15550100"}
		out := render(t, Details(NewData(p, "/profile/logout")))

		assert.Contains(t, out, `<td class="py-2">alice</td>`)
		assert.Contains(t, out, `<td class="py-2">alice@example.com</td>`)
		assert.Contains(t, out, `<td class="py-2">+15550100</td>`)
		assert.Contains(t, out, `action="/profile/logout"`)
		assert.Contains(t, out, `src="/static/user.svg"`)
		assert.NotContains(t, out, "Loading profile...")
	})

	t.Run("substitutes placeholders", func(t *testing.T) {
		out := render(t, Details(NewData(&domain.Profile{}, "/profile/logout")))

		assert.Contains(t, out, `<td class="py-2">Guest</td>`)
		assert.Equal(t, 2, bytes.Count([]byte(out), []byte(`<td class="py-2">N/A</td>`)))
	})

	t.Run("escapes backend values", func(t *testing.T) {
		out := render(t, Details(NewData(&domain.Profile{Username: "<script>"}, "/profile/logout")))

		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "&lt;script&gt;")
	})
}
