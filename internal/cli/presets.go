package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modforge/modforge/internal/defs"
	"github.com/modforge/modforge/internal/preset"
	"github.com/modforge/modforge/pkg/models"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the preset catalog",
	Long: `Presets prints the built-in presets plus any entries from the catalog
file, with the file selection each one applies.`,
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	path := presetsPath(cmd)
	catalog, err := preset.Load(path)
	if err != nil {
		return fmt.Errorf("load preset catalog: %w", err)
	}

	pairs := make([]kvPair, 0, catalog.Len())
	for _, name := range catalog.Names() {
		sel, _ := catalog.Get(name)
		pairs = append(pairs, kvPair{key: name, value: selectionWords(sel)})
	}
	body := renderKeyValueLines(pairs) + "\n\n" + cliMuted.Render("Catalog: "+path)
	fmt.Fprint(cmd.OutOrStdout(), renderCard("Presets", body))
	return nil
}

// presetsPath resolves the catalog path: the --presets flag when set,
// otherwise presets.yaml next to the settings file.
func presetsPath(cmd *cobra.Command) string {
	if path := getStringFlag(cmd, "presets"); path != "" {
		return path
	}
	return filepath.Join(filepath.Dir(deps.Store.Path()), defs.PresetsYAML)
}

func selectionWords(sel models.Selection) string {
	if sel.All {
		return "everything"
	}
	parts := make([]string, 0, 3)
	if sel.Script {
		parts = append(parts, "script")
	}
	if sel.Tuning {
		parts = append(parts, "tuning")
	}
	if sel.Package {
		parts = append(parts, "package")
	}
	if len(parts) == 0 {
		return "descriptor only"
	}
	return strings.Join(parts, ", ")
}
