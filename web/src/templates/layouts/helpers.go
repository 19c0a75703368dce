package layouts

const appName = "Mood2Move"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + appName
	}
	return appName
}
