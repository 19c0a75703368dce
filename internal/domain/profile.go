package domain

import "context"

const (
	guestName   = "Guest"
	notProvided = "N/A"
)

// Profile is the current user's record as returned by the backend.
// Fields the backend omits or sends as null are left empty.
type Profile struct {
	ID          int64  `json:"id,omitempty"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ProfileDisplay holds the strings shown in the profile details table.
type ProfileDisplay struct {
	Username string
	Email    string
	Mobile   string
}

// Display substitutes placeholders for empty fields. A nil profile renders
// entirely as placeholders.
func (p *Profile) Display() ProfileDisplay {
	if p == nil {
		return ProfileDisplay{Username: guestName, Email: notProvided, Mobile: notProvided}
	}
	return ProfileDisplay{
		Username: orDefault(p.Username, guestName),
		Email:    orDefault(p.Email, notProvided),
		Mobile:   orDefault(p.PhoneNumber, notProvided),
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// ProfileFetcher retrieves the profile belonging to a bearer token.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, token string) (*Profile, error)
}
