package view

import "github.com/nfrund/mood2move/internal/domain"

// Data is the view model for the profile details card. It flattens the
// domain profile into display strings with placeholders already applied.
type Data struct {
	Username   string
	Email      string
	Mobile     string
	PictureURL string
	LogoutURL  string
}

// DefaultPictureURL is shown until profiles carry their own picture.
const DefaultPictureURL = "/static/user.svg"

// NewData builds the view model from a fetched profile.
func NewData(p *domain.Profile, logoutURL string) Data {
	d := p.Display()
	return Data{
		Username:   d.Username,
		Email:      d.Email,
		Mobile:     d.Mobile,
		PictureURL: DefaultPictureURL,
		LogoutURL:  logoutURL,
	}
}
