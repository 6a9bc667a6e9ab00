// Package wizard provides the interactive forms for mod generation and
// settings editing. Callers gate on TTY state; nothing here runs
// headless.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/modforge/modforge/internal/config"
	"github.com/modforge/modforge/pkg/models"
)

// ErrCancelled is returned when the user aborts a form.
var ErrCancelled = errors.New("wizard cancelled by user")

// Multi-select choice values for the file-type question.
const (
	choiceScript  = "script"
	choiceTuning  = "tuning"
	choicePackage = "package"
	choiceAll     = "all"
)

// Run collects a full generation request: folder name, base file name
// and the file-type selection. Choosing "everything" sets the All flag;
// expanding it into the individual flags is the caller's job.
func Run(ctx context.Context) (*models.Request, error) {
	req := &models.Request{}
	var choices []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mod folder name").
				Description("Created under the configured mods folder.").
				Placeholder("MyMod").
				Validate(requireValue("folder name")).
				Value(&req.FolderName),
			huh.NewInput().
				Title("Base file name").
				Description("Names the generated script, tuning and package files.").
				Placeholder("my_mod").
				Validate(requireValue("file name")).
				Value(&req.FileName),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Files to generate").
				Description("The descriptor is always written.").
				Options(
					huh.NewOption("Script (.py)", choiceScript),
					huh.NewOption("Tuning (.xml)", choiceTuning),
					huh.NewOption("Package (.package)", choicePackage),
					huh.NewOption("Everything", choiceAll),
				).
				Value(&choices),
		),
	).WithTheme(FormTheme())

	if err := form.RunWithContext(ctx); err != nil {
		return nil, formErr(err)
	}

	req.Selection = selectionFromChoices(choices)
	return req, nil
}

// RunSettings edits a copy of current through a form and returns it.
// The caller decides whether to persist the result.
func RunSettings(ctx context.Context, current *config.Settings) (*config.Settings, error) {
	edited := current.Clone()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mods folder").
				Description("Root directory mods are generated under.").
				Validate(requireValue("mods folder")).
				Value(&edited.MainModsFolder),
			huh.NewInput().
				Title("Temp mod timer").
				Description("Reserved flag, persisted as written.").
				Value(&edited.TempModTimer),
			huh.NewConfirm().
				Title("Enable generated mods").
				Value(&edited.GeneratedModsEnabled),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Strip spaces from folder names").
				Value(&edited.NamingRules.NoSpacesFolders),
			huh.NewConfirm().
				Title("Strip spaces from file names").
				Value(&edited.NamingRules.NoSpacesFiles),
			huh.NewConfirm().
				Title("Convert remaining spaces to underscores").
				Value(&edited.NamingRules.ConvertSpacesUnderscores),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Offer to open the mod folder after generation").
				Value(&edited.ShowOpenLocation),
			huh.NewConfirm().
				Title("Confirm after settings are saved").
				Value(&edited.ShowSaveSuccess),
			huh.NewConfirm().
				Title("Back up generated files").
				Value(&edited.BackupOptions.AlwaysBackup),
			huh.NewConfirm().
				Title("Place the package marker inside Scripts").
				Value(&edited.InitPyInScripts),
		),
	).WithTheme(FormTheme())

	if err := form.RunWithContext(ctx); err != nil {
		return nil, formErr(err)
	}
	return edited, nil
}

// selectionFromChoices maps multi-select values onto Selection flags.
func selectionFromChoices(choices []string) models.Selection {
	var sel models.Selection
	for _, c := range choices {
		switch c {
		case choiceScript:
			sel.Script = true
		case choiceTuning:
			sel.Tuning = true
		case choicePackage:
			sel.Package = true
		case choiceAll:
			sel.All = true
		}
	}
	return sel
}

// requireValue validates that an input is not blank.
func requireValue(what string) func(string) error {
	return func(val string) error {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

// formErr maps huh aborts to ErrCancelled and wraps everything else.
func formErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return fmt.Errorf("wizard error: %w", err)
}
