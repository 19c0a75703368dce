package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomeData is the view model for the landing page.
type HomeData struct {
	Authenticated bool
	LoginURL      string
	ProfileURL    string
}

// Home is the content of the landing page.
func Home(data HomeData) g.Node {
	return h.Section(
		h.Class("min-h-screen flex items-center justify-center bg-gradient-to-br from-red-700 to-red-900 text-white"),
		h.Div(
			h.Class("text-center space-y-6 p-8"),
			h.H1(h.Class("text-5xl font-extrabold"), g.Text("Where should your mood take you?")),
			h.P(h.Class("text-xl opacity-90"), g.Text("Tell us how you feel and we will find the place.")),
			g.If(data.Authenticated,
				h.A(h.Href(data.ProfileURL), h.Class("inline-block bg-white text-red-800 px-6 py-2 rounded-full"), g.Text("Go to your profile")),
			),
			g.If(!data.Authenticated,
				h.A(h.Href(data.LoginURL), h.Class("inline-block bg-white text-red-800 px-6 py-2 rounded-full"), g.Text("Login or sign up")),
			),
		),
	)
}
