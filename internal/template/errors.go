// Package template holds the embedded placeholder assets written into
// generated mods and the renderer that fills them in.
package template

import "errors"

// ErrAssetNotFound indicates a requested embedded asset does not exist.
var ErrAssetNotFound = errors.New("template: asset not found")
