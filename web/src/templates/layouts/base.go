package layouts

import (
	"context"

	"github.com/nfrund/mood2move/internal/view"
	"github.com/nfrund/mood2move/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Page is everything the base layout needs besides the page body.
type Page struct {
	Title   string
	Flashes partials.FlashData
	Nav     partials.NavData
}

// Base wraps page content in the full HTML document with navbar and flashes.
func Base(ctx context.Context, page Page, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			head(page.Title),
			h.Body(
				h.Class("min-h-screen bg-gray-100"),
				partials.Navbar(page.Nav),
				view.AdaptTemplToGomponent(ctx, partials.Flash(page.Flashes)),
				h.Main(h.Class("pt-16"), content),
			),
		),
	)
}

// Bare is a full HTML document whose body is content alone.
func Bare(title string, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			head(title),
			h.Body(h.Class("min-h-screen bg-gray-100"), content),
		),
	)
}

func head(title string) g.Node {
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(CalculateTitle(title))),
		h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
		h.Script(h.Src(htmxSrc), h.Defer()),
	)
}
