package registry

// ProfileRoutes are the URLs the profile module serves, published so other
// pages can link to them.
type ProfileRoutes struct {
	Page   string
	Logout string
}

// Keys for services shared between modules.
const (
	ProfileRoutesKey Key[ProfileRoutes] = "profile.routes"
)
