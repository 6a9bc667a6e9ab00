package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/modforge/modforge/internal/cli/wizard"
	"github.com/modforge/modforge/internal/config"
	"github.com/modforge/modforge/internal/core/scaffold"
	"github.com/modforge/modforge/internal/preset"
	"github.com/modforge/modforge/internal/ui"
	"github.com/modforge/modforge/pkg/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a mod folder with the selected starter files",
	Long: `Generate creates a mod folder under the configured mods directory and
fills it with a modinfo.py descriptor plus the selected starter files.

File selection comes from flags or a preset. When folder or file names
are missing and a terminal is attached, an interactive wizard collects
them; otherwise the command fails with an input error.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("folder", "", "mod folder name")
	generateCmd.Flags().String("file", "", "base name for generated files")
	generateCmd.Flags().Bool("script", false, "generate a Python script stub")
	generateCmd.Flags().Bool("tuning", false, "generate a tuning XML stub")
	generateCmd.Flags().Bool("package", false, "generate an empty package file")
	generateCmd.Flags().Bool("all", false, "generate script, tuning, and package files")
	generateCmd.Flags().String("preset", "", "apply a named preset from the catalog")
	generateCmd.Flags().Bool("backup", false, "back up created files (overrides settings)")
	generateCmd.Flags().Bool("open", false, "open the mod folder afterwards")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	settings, err := loadSettingsWithNotice(cmd)
	if err != nil {
		return err
	}

	req := models.Request{
		FolderName: getStringFlag(cmd, "folder"),
		FileName:   getStringFlag(cmd, "file"),
		Selection: models.Selection{
			Script:  getBoolFlag(cmd, "script"),
			Tuning:  getBoolFlag(cmd, "tuning"),
			Package: getBoolFlag(cmd, "package"),
			All:     getBoolFlag(cmd, "all"),
		},
	}

	if name := getStringFlag(cmd, "preset"); name != "" {
		catalog, err := preset.Load(presetsPath(cmd))
		if err != nil {
			return fmt.Errorf("load preset catalog: %w", err)
		}
		sel, ok := catalog.Get(name)
		if !ok {
			return fmt.Errorf("unknown preset %q, run \"modforge presets\" to list the catalog", name)
		}
		req.Selection = mergeSelections(req.Selection, sel)
	}

	if strings.TrimSpace(req.FolderName) == "" || strings.TrimSpace(req.FileName) == "" {
		if deps.Headless.IsHeadless() {
			return fmt.Errorf("%w: pass --folder and --file when no terminal is attached", scaffold.ErrMissingName)
		}
		answers, err := wizard.Run(ctx)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				fmt.Fprintln(out, "Generation cancelled.")
				return nil
			}
			return err
		}
		if strings.TrimSpace(req.FolderName) == "" {
			req.FolderName = answers.FolderName
		}
		if strings.TrimSpace(req.FileName) == "" {
			req.FileName = answers.FileName
		}
		if !req.Selection.Any() {
			req.Selection = answers.Selection
		}
	}
	req.Selection = req.Selection.Resolved()

	if cmd.Flags().Changed("backup") {
		settings.BackupOptions.AlwaysBackup = getBoolFlag(cmd, "backup")
	}

	var result *scaffold.Result
	step := ui.Step{
		Title: "Generating " + strings.TrimSpace(req.FolderName),
		Run: func(ctx context.Context) error {
			var genErr error
			result, genErr = deps.Generator.Generate(ctx, req, settings)
			return genErr
		},
	}
	if err := deps.Runner.Run(ctx, step); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	printGenerateResult(cmd, result)
	offerOpen(ctx, cmd, settings, result.TargetDir)
	return nil
}

func printGenerateResult(cmd *cobra.Command, result *scaffold.Result) {
	out := cmd.OutOrStdout()

	pairs := []kvPair{
		{key: "Folder", value: result.TargetDir},
		{key: "Files", value: fmt.Sprintf("%d created", len(result.Created))},
	}
	if result.BackupDir != "" {
		pairs = append(pairs, kvPair{key: "Backup", value: result.BackupDir})
	}

	lines := []string{renderKeyValueLines(pairs)}
	if len(result.Created) > 0 {
		files := make([]string, 0, len(result.Created))
		for _, path := range result.Created {
			rel, err := filepath.Rel(result.TargetDir, path)
			if err != nil || strings.HasPrefix(rel, "..") {
				rel = path
			}
			files = append(files, "  "+rel)
		}
		lines = append(lines, "", cliMuted.Render(strings.Join(files, "\n")))
	}
	fmt.Fprint(out, renderSuccessCard("Mod generated", lines...))

	for _, warning := range result.Warnings {
		fmt.Fprintln(out, symWarning()+" "+cliWarn.Render(warning))
	}
}

// offerOpen reveals the target folder when --open is set, or asks first
// when the settings enable the prompt and a terminal is attached.
func offerOpen(ctx context.Context, cmd *cobra.Command, settings *config.Settings, dir string) {
	if getBoolFlag(cmd, "open") {
		revealDir(dir, deps.Logger)
		return
	}
	if !settings.ShowOpenLocation || deps.Headless.IsHeadless() {
		return
	}

	open := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Open the mod folder now?").
			Value(&open),
	)).WithTheme(wizard.FormTheme())
	if err := form.RunWithContext(ctx); err != nil {
		return
	}
	if open {
		revealDir(dir, deps.Logger)
	}
}

func mergeSelections(a, b models.Selection) models.Selection {
	return models.Selection{
		Script:  a.Script || b.Script,
		Tuning:  a.Tuning || b.Tuning,
		Package: a.Package || b.Package,
		All:     a.All || b.All,
	}
}
