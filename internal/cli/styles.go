package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared lipgloss styles for command output. AdaptiveColor picks the
// light or dark variant from the detected terminal background.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#22C55E"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#047857", Dark: "#00A86B"})
	cliBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
)

func symSuccess() string { return cliSuccess.Render("\u2713") }

func symWarning() string { return cliWarn.Render("!") }

// kvPair is one label/value row in a card body.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines lays out pairs as aligned rows with muted labels.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		label := cliMuted.Render(fmt.Sprintf("%-*s", width, p.key))
		lines = append(lines, label+"  "+p.value)
	}
	return strings.Join(lines, "\n")
}

func boxed(content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder).
		Padding(0, 2).
		Render(content)
	return box + "\n"
}

// renderCard draws a rounded-border box with a bold title line and an
// optional body below it.
func renderCard(title, body string) string {
	content := cliPrimary.Bold(true).Render(title)
	if body != "" {
		content += "\n\n" + body
	}
	return boxed(content)
}

// renderSuccessCard is renderCard with a leading check mark and detail
// lines joined as the body.
func renderSuccessCard(title string, details ...string) string {
	content := symSuccess() + " " + cliPrimary.Bold(true).Render(title)
	if body := strings.Join(details, "\n"); body != "" {
		content += "\n\n" + body
	}
	return boxed(content)
}
