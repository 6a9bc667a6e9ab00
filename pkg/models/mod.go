package models

// Selection represents the file-type choices of one generation request.
// All is a convenience alias for "everything"; the scaffolder treats it
// as script+tuning+package without mutating the individual flags.
type Selection struct {
	Script  bool
	Tuning  bool
	Package bool
	All     bool
}

// Resolved returns the selection with the All alias expanded, mirroring
// the checkbox synchronization of the interactive surfaces: setting All
// forces the other three on.
func (s Selection) Resolved() Selection {
	if s.All {
		s.Script = true
		s.Tuning = true
		s.Package = true
	}
	return s
}

// Any reports whether at least one file type is selected.
func (s Selection) Any() bool {
	return s.Script || s.Tuning || s.Package || s.All
}

// Request is the input of one mod generation: raw names straight from
// the user plus the resolved file-type selection.
type Request struct {
	FolderName string
	FileName   string
	Selection  Selection
}

// ModInfo is the descriptor record written into every generated mod.
type ModInfo struct {
	Name    string
	Author  string
	Version string
}
