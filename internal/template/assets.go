package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed assets
var assetsFS embed.FS

// Embedded asset names.
const (
	// ModInfoTemplate is the mod descriptor template, rendered with a
	// models.ModInfo value.
	ModInfoTemplate = "modinfo.py.tmpl"

	// InitAsset is the package-marker file content.
	InitAsset = "init.py"

	// ScriptAsset is the placeholder script file content.
	ScriptAsset = "script.py"

	// TuningAsset is the placeholder tuning file content.
	TuningAsset = "tuning.xml"
)

// Assets returns the embedded placeholder filesystem rooted at the
// asset directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// The assets directory is compiled in; failing to root it is a
		// programming error.
		panic(fmt.Sprintf("template: embedded assets unavailable: %v", err))
	}
	return sub
}

// Asset returns the raw content of a single embedded asset.
func Asset(name string) ([]byte, error) {
	data, err := fs.ReadFile(Assets(), name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	return data, nil
}
