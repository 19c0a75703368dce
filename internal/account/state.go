package account

// State is where a profile view stands in its single pass.
type State int

const (
	StateLoading State = iota
	StateDisplaying
	StateRedirected
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateDisplaying:
		return "displaying"
	case StateRedirected:
		return "redirected"
	default:
		return "unknown"
	}
}

// Outcome maps the result of LoadProfile to the state the view ends in.
// There is no path back to StateLoading.
func Outcome(err error) State {
	if err != nil {
		return StateRedirected
	}
	return StateDisplaying
}
