package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// About is the content of the About page.
func About() g.Node {
	return h.Div(
		h.Class("container mx-auto p-8"),
		h.Div(
			h.Class("bg-white shadow-2xl rounded-xl p-10"),
			h.H1(
				h.Class("text-4xl font-extrabold text-red-800 mb-4 border-b pb-2"),
				g.Text("About Mood2Move"),
			),
			h.P(
				h.Class("text-gray-700 mb-6 leading-relaxed"),
				g.Text("Mood2Move suggests places to go based on how you feel, who you are with and where you are."),
			),
			h.Div(
				h.Class("space-y-4"),
				h.Div(
					h.Class("p-6 bg-gray-50 rounded-lg shadow"),
					h.Div(h.Class("font-bold text-xl mb-2"), g.Text("Your account")),
					h.P(h.Class("text-gray-700 text-base"), g.Text("Sign in to see your profile, your wishlist and where you have been.")),
				),
			),
		),
	)
}
