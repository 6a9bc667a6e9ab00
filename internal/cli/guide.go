package cli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the mod scaffolding guide",
	Long:  "Guide renders a short handbook covering the generated layout, the settings file, and the preset catalog format.",
	RunE:  runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if deps.Headless.IsHeadless() || deps.Theme.NoColor {
		fmt.Fprint(out, guideMarkdown)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(out, guideMarkdown)
		return nil
	}
	rendered, err := renderer.Render(guideMarkdown)
	if err != nil {
		fmt.Fprint(out, guideMarkdown)
		return nil
	}
	fmt.Fprint(out, rendered)
	return nil
}
