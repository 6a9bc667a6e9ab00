package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/modforge/modforge/internal/config"
	"github.com/modforge/modforge/internal/core/scaffold"
	"github.com/modforge/modforge/internal/defs"
	"github.com/modforge/modforge/internal/template"
	"github.com/modforge/modforge/internal/ui"
)

// Dependencies carries the shared services used by the command
// handlers. It is assembled once per invocation in InitDependencies.
type Dependencies struct {
	Store     *config.Store
	Generator scaffold.Generator
	Runner    ui.Runner
	Theme     *ui.Theme
	Headless  *ui.HeadlessManager
	Logger    *slog.Logger

	logFile *os.File
}

var deps *Dependencies

// InitDependencies builds the dependency set from the root command's
// persistent flags. It runs as PersistentPreRunE, so every subcommand
// sees a fully wired set.
func InitDependencies(cmd *cobra.Command) error {
	settingsPath := getStringFlag(cmd, "settings")
	logDir := getStringFlag(cmd, "log-dir")
	verbose := getBoolFlag(cmd, "verbose")
	noColor := getBoolFlag(cmd, "no-color")

	if settingsPath == "" {
		settingsPath = defs.SettingsJSON
	}

	logger, logFile, err := newLogger(logDir, verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	theme := ui.NewTheme(ui.ThemeConfig{NoColor: noColor})
	headless := ui.NewHeadlessManager()

	deps = &Dependencies{
		Store:     config.NewStore(settingsPath, logger),
		Generator: scaffold.NewGenerator(template.NewRenderer(template.Assets()), logger),
		Runner:    ui.NewRunner(theme, headless),
		Theme:     theme,
		Headless:  headless,
		Logger:    logger,
		logFile:   logFile,
	}
	return nil
}

// GetDeps returns the active dependency set.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps swaps the dependency set and returns the previous one. Tests
// use it to inject fakes and restore the original afterwards.
func SetDeps(d *Dependencies) *Dependencies {
	prev := deps
	deps = d
	return prev
}

// CloseDependencies releases resources held by the dependency set.
func CloseDependencies() {
	if deps == nil || deps.logFile == nil {
		return
	}
	if err := deps.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
	}
	deps.logFile = nil
}
