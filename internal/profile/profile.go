// Package profile orchestrates the lifecycle of per-application color
// profiles: resolving a source image, delegating palette computation to
// the external matugen process, mirroring the result into an end-4
// dotfiles tree, and keeping the state store consistent.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"matugenium/internal/config"
	"matugenium/internal/git"
	"matugenium/internal/models"
	"matugenium/internal/state"
)

var (
	// ErrToolNotAvailable indicates matugen is missing from PATH.
	ErrToolNotAvailable = errors.New("matugen command not found in PATH")
	// ErrNoSourceImage indicates no usable icon or fallback image exists.
	ErrNoSourceImage = errors.New("could not resolve a valid icon/image source; use --image with a path to any wallpaper/icon image")
	// ErrUnsafePath indicates a deletion or mirror target escapes its
	// managed root. Never downgraded: the operation that raised it aborts.
	ErrUnsafePath = errors.New("path escapes the managed root")
)

// Outcome describes what an operation did for one application.
type Outcome int

const (
	// OutcomeGenerated means a profile was (re)generated and recorded.
	OutcomeGenerated Outcome = iota
	// OutcomeSkipped means a profile already existed and force was off.
	OutcomeSkipped
	// OutcomeRemoved means a tracked profile was deleted and forgotten.
	OutcomeRemoved
	// OutcomeNotTracked means removal found nothing to do.
	OutcomeNotTracked
)

// Result reports one lifecycle operation.
type Result struct {
	Key         string
	Outcome     Outcome
	OutputDir   string
	SourceImage string
	MirrorPath  string
	Command     []string
	Diff        *PaletteDiff // Set on forced regeneration when both palettes were readable
}

// Generator composes the registry, matcher and state store into the
// create/skip/regenerate/remove decisions. The external runner is a
// field so tests can substitute the matugen invocation.
type Generator struct {
	Config   *config.Config
	Store    *state.Store
	Runner   Runner
	DryRun   bool
	IconDirs []string
	IconExts []string

	// Logf receives verbose progress lines; nil disables them.
	Logf func(format string, args ...any)
}

// New returns a Generator with the default exec-backed runner and
// platform icon search paths.
func New(cfg *config.Config, store *state.Store) *Generator {
	home, _ := os.UserHomeDir()
	return &Generator{
		Config: cfg,
		Store:  store,
		Runner: &ExecRunner{},
		IconDirs: []string{
			filepath.Join(home, ".local/share/icons"),
			filepath.Join(home, ".icons"),
			"/usr/share/icons",
			"/usr/share/pixmaps",
		},
		IconExts: []string{".png", ".svg", ".jpg", ".jpeg", ".webp"},
	}
}

func (g *Generator) logf(format string, args ...any) {
	if g.Logf != nil {
		g.Logf(format, args...)
	}
}

// Key derives the state store key for an application.
func Key(app models.AppEntry) string {
	identity := app.DesktopID
	if identity == "" {
		identity = app.Name
	}
	return state.NormalizeKey(identity)
}

// Generate creates (or with force, regenerates) the profile for app.
// An existing record without force is a no-op Skipped outcome; the
// record stays untouched and matugen is never invoked.
func (g *Generator) Generate(app models.AppEntry, force bool) (*Result, error) {
	key := Key(app)
	existing := g.Store.GetProfile(key)
	if existing != nil && !force {
		return &Result{Key: key, Outcome: OutcomeSkipped, OutputDir: existing.OutputDir}, nil
	}

	if _, err := g.Runner.LookPath("matugen"); err != nil {
		return nil, ErrToolNotAvailable
	}

	source := g.resolveSourceImage(app.Icon)
	if source == "" && g.Config.FallbackImage != "" {
		source = expandHome(g.Config.FallbackImage)
	}
	if source == "" || !fileExists(source) {
		return nil, ErrNoSourceImage
	}

	outputDir := g.Config.ProfileDir(key)
	colorsPath := filepath.Join(outputDir, "colors.json")
	command := []string{"matugen", "image", source, "-m", "dark", "-j", "hex"}

	// Snapshot the old palette so a forced regeneration can report what
	// changed. The record's own output dir is authoritative: the output
	// root may have moved since the profile was first generated.
	var oldPalette []byte
	if existing != nil {
		oldPath := colorsPath
		if existing.OutputDir != "" {
			oldPath = filepath.Join(existing.OutputDir, "colors.json")
		}
		oldPalette, _ = os.ReadFile(oldPath)
	}

	result := &Result{
		Key:         key,
		Outcome:     OutcomeGenerated,
		OutputDir:   outputDir,
		SourceImage: source,
		Command:     command,
	}

	if g.DryRun {
		g.logf("dry-run: would run %s in %s", strings.Join(command, " "), outputDir)
		return result, nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if err := g.Runner.Run(command[0], command[1:], outputDir); err != nil {
		return nil, fmt.Errorf("matugen failed for %s: %w", app.Name, err)
	}

	if oldPalette != nil {
		if newPalette, err := os.ReadFile(colorsPath); err == nil {
			result.Diff = DiffPalettes(oldPalette, newPalette)
		}
	}

	mirror, err := g.mirrorPalette(key, colorsPath)
	if err != nil {
		return nil, err
	}
	result.MirrorPath = mirror

	record := state.ProfileRecord{
		Name:         app.Name,
		DesktopID:    app.DesktopID,
		OutputDir:    outputDir,
		SourceImage:  source,
		End4JSONPath: mirror,
	}
	if err := g.Store.RecordProfile(key, record); err != nil {
		return nil, fmt.Errorf("record profile: %w", err)
	}
	return result, nil
}

// mirrorPalette copies a produced colors.json into the end-4 tree and
// commits it when that tree is a git repository. Returns the mirror
// path, or "" when mirroring is disabled or nothing was produced.
func (g *Generator) mirrorPalette(key, colorsPath string) (string, error) {
	target := g.Config.MirrorPath(key)
	if target == "" {
		return "", nil
	}
	if !pathWithin(g.Config.End4Dir, target) {
		return "", fmt.Errorf("%w: mirror target %s outside %s", ErrUnsafePath, target, g.Config.End4Dir)
	}
	if !fileExists(colorsPath) {
		return "", nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("create mirror directory: %w", err)
	}
	if err := copyFile(colorsPath, target); err != nil {
		return "", fmt.Errorf("mirror palette: %w", err)
	}
	g.commitMirror(target, key)
	return target, nil
}

// commitMirror best-effort commits the mirrored palette. Failures are
// reported through the verbose log only.
func (g *Generator) commitMirror(target, key string) {
	repo := git.NewRepo(g.Config.End4Dir)
	if !repo.IsRepo() {
		return
	}
	if err := repo.CommitFile(target, fmt.Sprintf("matugenium: update %s palette", key)); err != nil {
		g.logf("git commit skipped: %v", err)
	}
}

// resolveSourceImage turns an icon token into an image path. A token
// that is already a valid path wins; otherwise the icon directories are
// probed per extension in priority order.
func (g *Generator) resolveSourceImage(icon string) string {
	if icon == "" {
		return ""
	}
	if fileExists(icon) {
		return icon
	}
	for _, dir := range g.IconDirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		for _, ext := range g.IconExts {
			candidate := filepath.Join(dir, icon+ext)
			if fileExists(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// pathWithin reports whether child resolves to a descendant of parent
// (or parent itself). Symlinks are resolved on both sides, so a link
// planted inside a managed root cannot redirect a deletion outside it.
func pathWithin(parent, child string) bool {
	resolvedParent := resolvePath(parent)
	resolvedChild := resolvePath(child)
	if resolvedParent == "" || resolvedChild == "" {
		return false
	}
	rel, err := filepath.Rel(resolvedParent, resolvedChild)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}

// resolvePath makes path absolute and resolves symlinks. Paths that do
// not exist yet resolve through their nearest existing ancestor.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	suffix := ""
	for p := abs; ; {
		if resolved, err := filepath.EvalSymlinks(p); err == nil {
			return filepath.Join(resolved, suffix)
		}
		parent := filepath.Dir(p)
		if parent == p {
			return abs
		}
		suffix = filepath.Join(filepath.Base(p), suffix)
		p = parent
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
