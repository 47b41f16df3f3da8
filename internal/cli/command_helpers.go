package cli

import (
	"fmt"
	"os"

	"github.com/augur-omega/settings-terminal/pkg/files"
	"github.com/augur-omega/settings-terminal/pkg/models"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Prefs       *models.Prefs
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() (*CommandContext, error) {
	return &CommandContext{
		ProjectPath: files.AugurDir,
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .augur directory found. Run 'augur-settings init' first")
	}

	c.validated = true
	return nil
}

// LoadPrefsWithDefault loads the persisted preference entry or falls back
// to the defaults derived from the built-in document.
func (c *CommandContext) LoadPrefsWithDefault() *models.Prefs {
	if c.Prefs != nil {
		return c.Prefs
	}

	prefs, err := files.ReadPrefs()
	if err != nil {
		prefs = models.DefaultPrefs()
	}

	c.Prefs = prefs
	return prefs
}
