// Package naming applies the user-configured name transforms to folder
// and file names before scaffolding.
package naming

import (
	"strings"

	"github.com/modforge/modforge/internal/config"
)

// Clean applies the naming rules to name. The transforms are
// order-sensitive: the strip rules run first, so when one fires the
// underscore conversion has no spaces left to touch.
func Clean(name string, isFolder bool, rules config.NamingRules) string {
	if rules.NoSpacesFolders && isFolder {
		name = strings.ReplaceAll(name, " ", "")
	}
	if rules.NoSpacesFiles && !isFolder {
		name = strings.ReplaceAll(name, " ", "")
	}
	if rules.ConvertSpacesUnderscores {
		name = strings.ReplaceAll(name, " ", "_")
	}
	return name
}
