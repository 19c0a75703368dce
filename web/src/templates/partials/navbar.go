package partials

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NavData drives the authentication-dependent parts of the navbar.
type NavData struct {
	Authenticated bool
	HomeURL       string
	LoginURL      string
	ProfileURL    string
}

// Navbar renders the top navigation. It is rebuilt on every full page load,
// so it reflects the credential state at the time of the request.
func Navbar(data NavData) g.Node {
	return h.Nav(
		h.Class("fixed top-0 inset-x-0 bg-red-800 text-white shadow z-40"),
		h.Div(
			h.Class("max-w-5xl mx-auto flex items-center justify-between px-4 py-3"),
			h.A(h.Href(data.HomeURL), h.Class("text-2xl font-bold tracking-tight"), g.Text("Mood2Move")),
			h.Div(
				h.Class("flex items-center gap-6"),
				h.A(h.Href(data.HomeURL), h.Class("hover:underline"), g.Text("Home")),
				h.A(h.Href("/about"), h.Class("hover:underline"), g.Text("About")),
				g.If(data.Authenticated,
					h.A(h.Href(data.ProfileURL), h.ID("nav-profile"), h.Class("flex items-center gap-2 hover:underline"),
						h.Img(h.Src("/static/user.svg"), h.Alt("Profile"), h.Class("h-8 w-8 rounded-full border-2 border-white")),
						g.Text("Profile"),
					),
				),
				g.If(!data.Authenticated,
					h.A(h.Href(data.LoginURL), h.ID("nav-login"), h.Class("bg-white text-red-800 px-4 py-1 rounded-full"), g.Text("Login")),
				),
			),
		),
	)
}
