package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LoginData is the view model for the login form.
type LoginData struct {
	Action     string
	Identifier string
}

// Login renders the sign-in form. The identifier may be a username or an email.
func Login(data LoginData) g.Node {
	return h.Div(
		h.Class("min-h-screen flex items-center justify-center p-4"),
		h.Form(
			h.Method("post"),
			h.Action(data.Action),
			h.Class("bg-white rounded-lg shadow-lg w-full max-w-md p-6 space-y-4"),
			h.H1(h.Class("text-2xl font-bold text-red-800"), g.Text("Login")),
			h.Label(h.For("username"), h.Class("block font-semibold"), g.Text("Username or email")),
			h.Input(h.Type("text"), h.ID("username"), h.Name("username"), h.Value(data.Identifier),
				h.Required(), h.AutoComplete("username"), h.Class("w-full border rounded px-3 py-2")),
			h.Label(h.For("password"), h.Class("block font-semibold"), g.Text("Password")),
			h.Input(h.Type("password"), h.ID("password"), h.Name("password"),
				h.Required(), h.AutoComplete("current-password"), h.Class("w-full border rounded px-3 py-2")),
			h.Button(h.Type("submit"), h.Class("w-full bg-red-600 text-white px-6 py-2 rounded-full hover:bg-red-700 transition"),
				g.Text("Login")),
		),
	)
}
