package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/modforge/modforge/internal/config"
	"github.com/modforge/modforge/pkg/models"
)

func TestGenerate_PackageOnly(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	req := models.Request{
		FolderName: "TestMod",
		FileName:   "mymod",
		Selection:  models.Selection{Package: true},
	}

	result, err := gen.Generate(context.Background(), req, testSettings(root))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wantDir := filepath.Join(root, "TestMod")
	if result.TargetDir != wantDir {
		t.Errorf("TargetDir = %q, want %q", result.TargetDir, wantDir)
	}

	// Descriptor and package marker fire on every generation under
	// default settings, so package-only still yields three files.
	want := []string{
		filepath.Join(wantDir, "modinfo.py"),
		filepath.Join(wantDir, "Scripts", "__init__.py"),
		filepath.Join(wantDir, "mymod.package"),
	}
	assertCreated(t, result.Created, want)

	for _, path := range want {
		assertFileExists(t, path)
	}
	if dirExists(filepath.Join(wantDir, "Tuning")) {
		t.Error("Tuning directory should not exist for package-only selection")
	}
}

func TestGenerate_PackageFileIsEmpty(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	req := models.Request{
		FolderName: "Empty",
		FileName:   "content",
		Selection:  models.Selection{Package: true},
	}

	_, err := gen.Generate(context.Background(), req, testSettings(root))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(root, "Empty", "content.package"))
	if err != nil {
		t.Fatalf("stat package file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("package file size = %d, want 0", info.Size())
	}
}

func TestGenerate_AllEqualsFullSelection(t *testing.T) {
	rootAll := t.TempDir()
	rootEach := t.TempDir()
	gen := NewGenerator(nil, nil)

	base := models.Request{FolderName: "Mod", FileName: "mod"}

	reqAll := base
	reqAll.Selection = models.Selection{All: true}
	resultAll, err := gen.Generate(context.Background(), reqAll, testSettings(rootAll))
	if err != nil {
		t.Fatalf("Generate(all) error = %v", err)
	}

	reqEach := base
	reqEach.Selection = models.Selection{Script: true, Tuning: true, Package: true}
	resultEach, err := gen.Generate(context.Background(), reqEach, testSettings(rootEach))
	if err != nil {
		t.Fatalf("Generate(each) error = %v", err)
	}

	gotAll := relPaths(t, rootAll, resultAll.Created)
	gotEach := relPaths(t, rootEach, resultEach.Created)
	sort.Strings(gotAll)
	sort.Strings(gotEach)

	if len(gotAll) != len(gotEach) {
		t.Fatalf("file count mismatch: all=%d each=%d", len(gotAll), len(gotEach))
	}
	for i := range gotAll {
		if gotAll[i] != gotEach[i] {
			t.Errorf("file set mismatch at %d: all=%q each=%q", i, gotAll[i], gotEach[i])
		}
	}
}

func TestGenerate_CreationOrder(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	req := models.Request{
		FolderName: "Ordered",
		FileName:   "ord",
		Selection:  models.Selection{All: true},
	}

	result, err := gen.Generate(context.Background(), req, testSettings(root))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	dir := filepath.Join(root, "Ordered")
	want := []string{
		filepath.Join(dir, "modinfo.py"),
		filepath.Join(dir, "Scripts", "__init__.py"),
		filepath.Join(dir, "Scripts", "ord.py"),
		filepath.Join(dir, "Tuning", "ord.xml"),
		filepath.Join(dir, "ord.package"),
	}
	assertCreated(t, result.Created, want)
}

func TestGenerate_EmptyFolderName(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	req := models.Request{
		FolderName: "   ",
		FileName:   "mod",
		Selection:  models.Selection{All: true},
	}

	_, err := gen.Generate(context.Background(), req, testSettings(root))
	if !errors.Is(err, ErrMissingName) {
		t.Fatalf("Generate() error = %v, want ErrMissingName", err)
	}
	assertDirEmpty(t, root)
}

func TestGenerate_EmptyFileName(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	req := models.Request{
		FolderName: "Mod",
		FileName:   "",
		Selection:  models.Selection{All: true},
	}

	_, err := gen.Generate(context.Background(), req, testSettings(root))
	if !errors.Is(err, ErrMissingName) {
		t.Fatalf("Generate() error = %v, want ErrMissingName", err)
	}
	assertDirEmpty(t, root)
}

func TestGenerate_MissingModsFolder(t *testing.T) {
	gen := NewGenerator(nil, nil)

	settings := config.NewDefaultSettings()
	settings.MainModsFolder = ""

	req := models.Request{
		FolderName: "Mod",
		FileName:   "mod",
		Selection:  models.Selection{All: true},
	}

	_, err := gen.Generate(context.Background(), req, settings)
	if !errors.Is(err, ErrMissingRoot) {
		t.Fatalf("Generate() error = %v, want ErrMissingRoot", err)
	}
}

func TestGenerate_NamingRulesApplied(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	settings := testSettings(root)
	settings.NamingRules.NoSpacesFolders = true
	settings.NamingRules.ConvertSpacesUnderscores = true

	req := models.Request{
		FolderName: "My Cool Mod",
		FileName:   "my script",
		Selection:  models.Selection{Script: true},
	}

	result, err := gen.Generate(context.Background(), req, settings)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wantDir := filepath.Join(root, "MyCoolMod")
	if result.TargetDir != wantDir {
		t.Errorf("TargetDir = %q, want %q", result.TargetDir, wantDir)
	}
	assertFileExists(t, filepath.Join(wantDir, "Scripts", "my_script.py"))
}

func TestGenerate_MarkerAtRootWhenDisabled(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	settings := testSettings(root)
	settings.InitPyInScripts = false

	req := models.Request{
		FolderName: "Mod",
		FileName:   "mod",
		Selection:  models.Selection{Script: true},
	}

	_, err := gen.Generate(context.Background(), req, settings)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	dir := filepath.Join(root, "Mod")
	assertFileExists(t, filepath.Join(dir, "__init__.py"))
	if _, statErr := os.Stat(filepath.Join(dir, "Scripts", "__init__.py")); statErr == nil {
		t.Error("marker should not be inside Scripts when the setting is disabled")
	}
	assertFileExists(t, filepath.Join(dir, "Scripts", "mod.py"))
}

func TestGenerate_NoMarkerWithoutScriptWhenDisabled(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	settings := testSettings(root)
	settings.InitPyInScripts = false
	settings.BackupOptions.AlwaysBackup = false

	req := models.Request{
		FolderName: "Mod",
		FileName:   "mod",
		Selection:  models.Selection{Package: true},
	}

	result, err := gen.Generate(context.Background(), req, settings)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	dir := filepath.Join(root, "Mod")
	want := []string{
		filepath.Join(dir, "modinfo.py"),
		filepath.Join(dir, "mod.package"),
	}
	assertCreated(t, result.Created, want)
}

func TestGenerate_EmptySelectionStillWritesDescriptor(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	req := models.Request{
		FolderName: "Bare",
		FileName:   "bare",
	}

	result, err := gen.Generate(context.Background(), req, testSettings(root))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	dir := filepath.Join(root, "Bare")
	want := []string{
		filepath.Join(dir, "modinfo.py"),
		filepath.Join(dir, "Scripts", "__init__.py"),
	}
	assertCreated(t, result.Created, want)
}

func TestGenerate_ModInfoContent(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	req := models.Request{
		FolderName: "Cool",
		FileName:   "CoolMod",
		Selection:  models.Selection{Package: true},
	}

	_, err := gen.Generate(context.Background(), req, testSettings(root))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "Cool", "modinfo.py"))
	if err != nil {
		t.Fatalf("read modinfo.py: %v", err)
	}

	want := "modinfo = {\n" +
		"    \"Name\": \"CoolMod\",\n" +
		"    \"Author\": \"YourNameHere\",\n" +
		"    \"Version\": \"1.0\",\n" +
		"}\n"
	if string(data) != want {
		t.Errorf("modinfo.py content = %q, want %q", string(data), want)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	req := models.Request{
		FolderName: "Rerun",
		FileName:   "rerun",
		Selection:  models.Selection{All: true},
	}
	settings := testSettings(root)

	first, err := gen.Generate(context.Background(), req, settings)
	if err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}

	// Scribble over the descriptor, then rerun into the same folder.
	modInfoPath := filepath.Join(first.TargetDir, "modinfo.py")
	if err := os.WriteFile(modInfoPath, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("overwrite modinfo.py: %v", err)
	}

	second, err := gen.Generate(context.Background(), req, settings)
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	if len(second.Created) != len(first.Created) {
		t.Errorf("second run created %d files, want %d", len(second.Created), len(first.Created))
	}

	data, err := os.ReadFile(modInfoPath)
	if err != nil {
		t.Fatalf("read modinfo.py: %v", err)
	}
	if string(data) == "garbage" {
		t.Error("rerun should overwrite existing files")
	}
}

func TestGenerate_BackupMirrorsCreatedFiles(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	req := models.Request{
		FolderName: "Saved",
		FileName:   "saved",
		Selection:  models.Selection{All: true},
	}

	result, err := gen.Generate(context.Background(), req, testSettings(root))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wantBackup := filepath.Join(root, "Saved_Backup")
	if result.BackupDir != wantBackup {
		t.Errorf("BackupDir = %q, want %q", result.BackupDir, wantBackup)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}

	// The backup is flat: every created file lands by base name.
	for _, src := range result.Created {
		backupPath := filepath.Join(wantBackup, filepath.Base(src))
		assertFileExists(t, backupPath)

		srcData, readErr := os.ReadFile(src)
		if readErr != nil {
			t.Fatalf("read %s: %v", src, readErr)
		}
		backupData, readErr := os.ReadFile(backupPath)
		if readErr != nil {
			t.Fatalf("read %s: %v", backupPath, readErr)
		}
		if string(srcData) != string(backupData) {
			t.Errorf("backup of %s differs from source", filepath.Base(src))
		}
	}
}

func TestGenerate_BackupDisabled(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	settings := testSettings(root)
	settings.BackupOptions.AlwaysBackup = false

	req := models.Request{
		FolderName: "NoBak",
		FileName:   "nobak",
		Selection:  models.Selection{All: true},
	}

	result, err := gen.Generate(context.Background(), req, settings)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.BackupDir != "" {
		t.Errorf("BackupDir = %q, want empty", result.BackupDir)
	}
	if dirExists(filepath.Join(root, "NoBak_Backup")) {
		t.Error("backup directory should not exist when backups are disabled")
	}
}

func TestGenerate_BackupFailureIsWarning(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	// Occupy the backup path with a regular file so MkdirAll fails.
	if err := os.WriteFile(filepath.Join(root, "Blocked_Backup"), []byte("x"), 0o644); err != nil {
		t.Fatalf("plant blocking file: %v", err)
	}

	req := models.Request{
		FolderName: "Blocked",
		FileName:   "blocked",
		Selection:  models.Selection{All: true},
	}

	result, err := gen.Generate(context.Background(), req, testSettings(root))
	if err != nil {
		t.Fatalf("Generate() error = %v (backup failure must not fail the run)", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for the failed backup")
	}
	if !strings.Contains(result.Warnings[0], "backup") {
		t.Errorf("warning %q should mention the backup", result.Warnings[0])
	}
	assertFileExists(t, filepath.Join(root, "Blocked", "modinfo.py"))
}

func TestGenerate_ContextCancellation(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := models.Request{
		FolderName: "Mod",
		FileName:   "mod",
		Selection:  models.Selection{All: true},
	}

	_, err := gen.Generate(ctx, req, testSettings(root))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate() error = %v, want context.Canceled", err)
	}
}

// --- Test helpers ---

func testSettings(root string) *config.Settings {
	settings := config.NewDefaultSettings()
	settings.MainModsFolder = root
	return settings
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatalf("rel %s: %v", p, err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func assertCreated(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("created %d files %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("created[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file %s to exist", path)
	}
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	if len(entries) != 0 {
		t.Errorf("expected %s to be empty, found %d entries", dir, len(entries))
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
