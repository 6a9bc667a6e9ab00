// Package scaffold creates the directory tree and placeholder files of
// one mod under the configured mods folder.
package scaffold

import "errors"

// Sentinel errors for generation preconditions. Both are checked before
// any filesystem mutation.
var (
	// ErrMissingName indicates an empty folder or file name.
	ErrMissingName = errors.New("scaffold: required name not specified")

	// ErrMissingRoot indicates the mods folder setting is empty.
	ErrMissingRoot = errors.New("scaffold: mods folder not configured")
)
