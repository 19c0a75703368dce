package app

import (
	"github.com/nfrund/mood2move/internal/module"
	"github.com/nfrund/mood2move/internal/modules/profile"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		profile.New(profileDeps(deps)),
	}
}
