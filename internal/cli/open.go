package cli

import (
	"log/slog"
	"os/exec"
	"runtime"
)

// revealDir opens dir in the platform file manager. Failures are logged
// and otherwise ignored; revealing the folder is a convenience, not
// part of the generation result.
func revealDir(dir string, logger *slog.Logger) {
	var open *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		open = exec.Command("open", dir)
	case "windows":
		open = exec.Command("explorer", dir)
	default:
		open = exec.Command("xdg-open", dir)
	}
	if err := open.Start(); err != nil {
		logger.Warn("open folder failed", "path", dir, "error", err)
		return
	}
	go func() { _ = open.Wait() }()
}
