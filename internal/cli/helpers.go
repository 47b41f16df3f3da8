package cli

import (
	"fmt"

	"github.com/augur-omega/settings-terminal/pkg/files"
	"github.com/augur-omega/settings-terminal/pkg/models"
	"github.com/augur-omega/settings-terminal/pkg/schema"
)

// LoadBaseDocument resolves the base document for a command: the built-in
// defaults when path is empty, otherwise the validated content of the file.
func LoadBaseDocument(path string) (models.Document, error) {
	if path == "" {
		return models.DefaultDocument(), nil
	}

	data, err := files.ImportFile(path)
	if err != nil {
		return models.Document{}, err
	}

	doc, err := schema.Validate(string(data))
	if err != nil {
		return models.Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
