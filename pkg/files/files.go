package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/augur-omega/settings-terminal/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	AugurDir   = ".augur"
	ExportsDir = "exports"
	PrefsFile  = "prefs.yaml"

	// ExportFileName is the fixed name of the export artifact.
	ExportFileName = "augur-omega-settings.json"

	// ExportContentType is the fixed content type of the export artifact.
	ExportContentType = "application/json"
)

func InitProjectStructure() error {
	dirs := []string{
		AugurDir,
		filepath.Join(AugurDir, ExportsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ReadPrefs loads the persisted preference entry from its fixed key.
func ReadPrefs() (*models.Prefs, error) {
	path := filepath.Join(AugurDir, PrefsFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var prefs models.Prefs
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}

	return &prefs, nil
}

// WritePrefs persists the preference entry under its fixed key. The entry
// carries only viewable preferences and the masked api_key indicator; the
// literal secret never reaches disk.
func WritePrefs(prefs *models.Prefs) error {
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	path := filepath.Join(AugurDir, PrefsFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	return nil
}

// ImportFile reads a user-selected file in one scoped operation: the handle
// is acquired, fully read, and released before control returns, on every
// exit path.
func ImportFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file %s: %w", path, err)
	}
	return data, nil
}

// WriteExport writes the export artifact under its fixed file name into the
// exports directory and returns the written path.
func WriteExport(data []byte) (string, error) {
	dir := filepath.Join(AugurDir, ExportsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create exports directory: %w", err)
	}

	path := filepath.Join(dir, ExportFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export %s: %w", path, err)
	}

	return path, nil
}

// WriteFile writes an arbitrary artifact outside the project directory,
// used by the headless export command's --file flag.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
