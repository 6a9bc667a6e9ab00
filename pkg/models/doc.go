// Package models provides shared data models for modforge.
//
// This package contains the request and selection types exchanged between
// the CLI, the interactive wizard, and the scaffolding core.
//
// # Selections
//
// A [Selection] carries the four file-type checkboxes of a generation
// request. The All flag is a convenience alias resolved at the
// presentation layer:
//
//	sel := models.Selection{All: true}
//	sel = sel.Resolved() // Script, Tuning and Package forced on
//
// The scaffolding core also honors All directly, so an unresolved
// selection produces the same files.
//
// # Requests
//
// A [Request] bundles the raw folder/file names with a selection. Names
// are passed through untouched; trimming and naming-rule transforms
// happen inside the scaffolder.
package models
