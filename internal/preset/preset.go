// Package preset resolves named file-type selections. Compiled
// built-ins cover the common cases; an optional YAML catalog next to
// the settings file can add or replace entries.
package preset

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/modforge/modforge/pkg/models"
)

// ErrInvalidCatalog indicates the presets file exists but cannot be
// parsed. Unlike settings corruption there is no fallback: presets are
// optional input, not recovered state.
var ErrInvalidCatalog = errors.New("preset: invalid catalog file")

// Built-in preset names.
const (
	Scripting = "scripting"
	Tuning    = "tuning"
	Packaging = "packaging"
	Full      = "full"
)

// Catalog maps preset names to selections. Lookup is case-insensitive.
type Catalog struct {
	entries map[string]entry
}

type entry struct {
	name string // spelling used for listing
	sel  models.Selection
}

// Builtins returns a catalog holding only the compiled presets.
func Builtins() *Catalog {
	c := &Catalog{entries: make(map[string]entry)}
	c.put(Scripting, models.Selection{Script: true})
	c.put(Tuning, models.Selection{Tuning: true})
	c.put(Packaging, models.Selection{Package: true})
	c.put(Full, models.Selection{All: true})
	return c
}

// catalogFile is the on-disk YAML shape.
type catalogFile struct {
	Presets map[string]selectionYAML `yaml:"presets"`
}

type selectionYAML struct {
	Script  bool `yaml:"script"`
	Tuning  bool `yaml:"tuning"`
	Package bool `yaml:"package"`
	All     bool `yaml:"all"`
}

// Load returns the built-ins overlaid with the catalog file at path.
// A missing file yields the built-ins alone. File entries replace
// built-ins of the same folded name.
func Load(path string) (*Catalog, error) {
	catalog := Builtins()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog, nil
		}
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), ErrInvalidCatalog)
	}

	// Insert in sorted order so colliding spellings resolve the same
	// way on every load.
	for _, name := range slices.Sorted(maps.Keys(file.Presets)) {
		s := file.Presets[name]
		catalog.put(name, models.Selection{
			Script:  s.Script,
			Tuning:  s.Tuning,
			Package: s.Package,
			All:     s.All,
		})
	}
	return catalog, nil
}

// Get resolves a preset name, ignoring case.
func (c *Catalog) Get(name string) (models.Selection, bool) {
	e, ok := c.entries[fold(name)]
	if !ok {
		return models.Selection{}, false
	}
	return e.sel, true
}

// Names returns all preset names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of presets in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) put(name string, sel models.Selection) {
	c.entries[fold(name)] = entry{name: name, sel: sel}
}

// fold builds a fresh caser per call; cases.Caser is stateful and must
// not be shared across goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}
