// Package convert turns free-text descriptions into partial updates to a
// settings document using a fixed, ordered keyword-rule table. It is not a
// natural-language system: matching is substring conjunction only.
package convert

import (
	"errors"
	"strings"

	"github.com/augur-omega/settings-terminal/pkg/models"
)

// ErrEmptyInput is returned by callers when a conversion is requested with
// blank input. Convert itself is never invoked in that case.
var ErrEmptyInput = errors.New("nothing to convert: enter a description first")

// Convert evaluates every rule against a case-insensitive view of input and
// returns a copy of base with each satisfied rule's field overwritten.
// Fields no rule fires for keep their value from base; if zero rules match
// the result deeply equals base. Convert never fails for unmatched input.
func Convert(input string, base models.Document) models.Document {
	text := strings.ToLower(input)
	result := base.Clone()

	for _, r := range Rules {
		if strings.Contains(text, r.Terms[0]) && strings.Contains(text, r.Terms[1]) {
			if updated, err := result.Set(r.Path, r.Value); err == nil {
				result = updated
			}
		}
	}

	return result
}
