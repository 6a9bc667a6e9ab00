package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/modforge/modforge/internal/config"
	"github.com/modforge/modforge/internal/core/naming"
	"github.com/modforge/modforge/internal/defs"
	"github.com/modforge/modforge/internal/template"
	"github.com/modforge/modforge/pkg/models"
)

// Descriptor field defaults written into every modinfo.py.
const (
	DefaultAuthor     = "YourNameHere"
	DefaultModVersion = "1.0"
)

// Result summarizes the outcome of one generation.
type Result struct {
	TargetDir string   // Mod folder created under the mods root.
	Created   []string // Absolute paths of created files, in creation order.
	BackupDir string   // Non-empty when a backup was attempted.
	Warnings  []string // Non-fatal problems, currently backup copy failures.
}

// Generator handles mod scaffolding.
type Generator interface {
	// Generate creates the folder/file skeleton for one request. The
	// selection is honored as given; the All flag triggers all three
	// file types regardless of the individual flags. Files already on
	// disk are overwritten, directories are reused.
	Generate(ctx context.Context, req models.Request, settings *config.Settings) (*Result, error)
}

// modGenerator is the concrete implementation of Generator.
type modGenerator struct {
	renderer template.Renderer
	logger   *slog.Logger
}

// NewGenerator creates a Generator. A nil renderer falls back to the
// embedded placeholder assets; a nil logger discards log output.
func NewGenerator(renderer template.Renderer, logger *slog.Logger) Generator {
	if renderer == nil {
		renderer = template.NewRenderer(template.Assets())
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &modGenerator{renderer: renderer, logger: logger}
}

// Generate creates the mod skeleton for req under settings.MainModsFolder.
//
// A failed step aborts the remaining steps; files created up to that
// point stay on disk. Backup problems never fail the generation, they
// are collected into Result.Warnings instead.
func (g *modGenerator) Generate(ctx context.Context, req models.Request, settings *config.Settings) (*Result, error) {
	folderName := strings.TrimSpace(req.FolderName)
	fileName := strings.TrimSpace(req.FileName)
	if folderName == "" {
		return nil, fmt.Errorf("%w: folder name", ErrMissingName)
	}
	if fileName == "" {
		return nil, fmt.Errorf("%w: file name", ErrMissingName)
	}
	root := strings.TrimSpace(settings.MainModsFolder)
	if root == "" {
		return nil, ErrMissingRoot
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Naming rules run on the trimmed input, before any path is built.
	cleanedFolder := naming.Clean(folderName, true, settings.NamingRules)
	cleanedFile := naming.Clean(fileName, false, settings.NamingRules)

	targetDir := filepath.Join(root, cleanedFolder)
	if abs, err := filepath.Abs(targetDir); err == nil {
		targetDir = abs
	}

	g.logger.Info("creating mod",
		"dir", targetDir,
		"file", cleanedFile,
		"selection", fmt.Sprintf("%+v", req.Selection),
	)

	if err := os.MkdirAll(targetDir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create mod folder: %w", err)
	}
	result := &Result{TargetDir: targetDir}

	sel := req.Selection

	// The descriptor is written on every generation, selected or not.
	if err := g.createModInfo(targetDir, cleanedFile, result); err != nil {
		return nil, fmt.Errorf("create %s: %w", defs.ModInfoPy, err)
	}

	// The marker also fires on an empty selection while the
	// init_py_in_scripts setting keeps its default true.
	if sel.All || sel.Script || settings.InitPyInScripts {
		if err := g.createMarker(targetDir, settings.InitPyInScripts, result); err != nil {
			return nil, fmt.Errorf("create %s: %w", defs.InitPy, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if sel.All || sel.Script {
		if err := g.createScript(targetDir, cleanedFile, result); err != nil {
			return nil, fmt.Errorf("create script file: %w", err)
		}
	}
	if sel.All || sel.Tuning {
		if err := g.createTuning(targetDir, cleanedFile, result); err != nil {
			return nil, fmt.Errorf("create tuning file: %w", err)
		}
	}
	if sel.All || sel.Package {
		if err := g.createPackage(targetDir, cleanedFile, result); err != nil {
			return nil, fmt.Errorf("create package file: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if settings.BackupOptions.AlwaysBackup && len(result.Created) > 0 {
		g.backup(result)
	}

	g.logger.Info("mod generated",
		"dir", targetDir,
		"files", len(result.Created),
		"warnings", len(result.Warnings),
	)
	return result, nil
}

// createModInfo writes the rendered mod descriptor into the target root.
func (g *modGenerator) createModInfo(dir, cleanedFile string, result *Result) error {
	content, err := g.renderer.Render(template.ModInfoTemplate, models.ModInfo{
		Name:    cleanedFile,
		Author:  DefaultAuthor,
		Version: DefaultModVersion,
	})
	if err != nil {
		return err
	}
	return g.writeFile(filepath.Join(dir, defs.ModInfoPy), content, result)
}

// createMarker writes the package-marker file, inside Scripts/ when
// inScripts is set and directly into the target root otherwise.
func (g *modGenerator) createMarker(dir string, inScripts bool, result *Result) error {
	markerDir := dir
	if inScripts {
		markerDir = filepath.Join(dir, defs.ScriptsDir)
		if err := os.MkdirAll(markerDir, defs.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", markerDir, err)
		}
	}
	content, err := template.Asset(template.InitAsset)
	if err != nil {
		return err
	}
	return g.writeFile(filepath.Join(markerDir, defs.InitPy), content, result)
}

// createScript writes the placeholder script under Scripts/.
func (g *modGenerator) createScript(dir, cleanedFile string, result *Result) error {
	scriptsDir := filepath.Join(dir, defs.ScriptsDir)
	if err := os.MkdirAll(scriptsDir, defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", scriptsDir, err)
	}
	content, err := template.Asset(template.ScriptAsset)
	if err != nil {
		return err
	}
	return g.writeFile(filepath.Join(scriptsDir, cleanedFile+defs.ScriptExt), content, result)
}

// createTuning writes the placeholder tuning XML under Tuning/.
func (g *modGenerator) createTuning(dir, cleanedFile string, result *Result) error {
	tuningDir := filepath.Join(dir, defs.TuningDir)
	if err := os.MkdirAll(tuningDir, defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", tuningDir, err)
	}
	content, err := template.Asset(template.TuningAsset)
	if err != nil {
		return err
	}
	return g.writeFile(filepath.Join(tuningDir, cleanedFile+defs.TuningExt), content, result)
}

// createPackage writes the empty package file into the target root.
func (g *modGenerator) createPackage(dir, cleanedFile string, result *Result) error {
	return g.writeFile(filepath.Join(dir, cleanedFile+defs.PackageExt), []byte{}, result)
}

// writeFile writes one generated file and records it in creation order.
func (g *modGenerator) writeFile(path string, content []byte, result *Result) error {
	if err := os.WriteFile(path, content, defs.FilePerm); err != nil {
		return err
	}
	result.Created = append(result.Created, path)
	g.logger.Debug("created file", "path", path)
	return nil
}

// backup duplicates every created file into the sibling backup folder,
// flattened by base name. Failures become warnings on the result.
func (g *modGenerator) backup(result *Result) {
	backupDir := result.TargetDir + defs.BackupDirSuffix
	result.BackupDir = backupDir

	if err := os.MkdirAll(backupDir, defs.DirPerm); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("backup skipped: %s", err))
		g.logger.Warn("backup directory creation failed", "dir", backupDir, "error", err)
		return
	}
	for _, path := range result.Created {
		dst := filepath.Join(backupDir, filepath.Base(path))
		if err := copyFile(path, dst); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("backup of %s failed: %s", filepath.Base(path), err))
			g.logger.Warn("backup copy failed", "file", path, "error", err)
		}
	}
	g.logger.Info("backup written", "dir", backupDir, "files", len(result.Created))
}

// copyFile duplicates src to dst, overwriting dst if present.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
