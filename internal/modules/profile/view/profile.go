package view

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ContainerID is the element the details fragment replaces.
const ContainerID = "profile"

// Loading is the placeholder shown while the profile is outstanding. htmx
// requests detailsURL once, on load, and swaps the whole container.
func Loading(detailsURL string) g.Node {
	return h.Div(
		h.ID(ContainerID),
		h.Class("min-h-screen bg-gray-100 flex items-center justify-center"),
		hx.Get(detailsURL),
		hx.Trigger("load"),
		hx.Swap("outerHTML"),
		h.P(h.Class("text-xl"), g.Text("Loading profile...")),
	)
}

// Details renders the fetched profile: picture, the three detail rows and the
// account actions.
func Details(data Data) g.Node {
	return h.Div(
		h.ID(ContainerID),
		h.Class("min-h-screen profile-backdrop bg-cover bg-center flex items-center justify-center p-4"),
		h.Div(
			h.Class("bg-white bg-opacity-90 rounded-lg shadow-lg w-full max-w-3xl p-6"),
			h.Div(
				h.Class("flex justify-center mb-6"),
				h.Img(
					h.Src(data.PictureURL),
					h.Alt("User"),
					h.Class("h-32 w-32 rounded-full border-4 border-red-700 object-cover"),
				),
			),
			h.Div(
				h.Class("overflow-x-auto"),
				h.Table(
					h.Class("w-full text-left text-lg sm:text-xl mb-6"),
					h.TBody(
						detailRow("Username", data.Username),
						detailRow("Email", data.Email),
						detailRow("Mobile", data.Mobile),
					),
				),
			),
			actions(data.LogoutURL),
		),
	)
}

func detailRow(label, value string) g.Node {
	return h.Tr(
		h.Td(h.Class("py-2 font-semibold text-red-800"), g.Text(label)),
		h.Td(h.Class("py-2"), g.Text(value)),
	)
}

func actions(logoutURL string) g.Node {
	return h.Div(
		h.Class("flex flex-col sm:flex-row justify-center gap-4"),
		actionButton("Edit"),
		actionButton("Wishlist"),
		actionButton("History"),
		h.Form(
			h.Method("post"),
			h.Action(logoutURL),
			h.Button(
				h.Type("submit"),
				h.ID("logout"),
				h.Class("bg-gray-600 text-white px-6 py-2 rounded-full hover:bg-gray-700 transition"),
				g.Text("Logout"),
			),
		),
	)
}

// actionButton is a placeholder for account features that have no page yet.
func actionButton(label string) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class("bg-red-600 text-white px-6 py-2 rounded-full hover:bg-red-700 transition"),
		g.Text(label),
	)
}
