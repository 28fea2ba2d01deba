// Package registry discovers installed applications and exposes them as
// a uniform, sorted list of entries.
package registry

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"matugenium/internal/models"
)

// Registry enumerates installed applications. Desktop-entry roots and
// bundle roots are scanned in declaration order; earlier roots win when
// the same identity appears twice.
type Registry struct {
	desktopDirs []string // *.desktop roots (Linux and friends)
	bundleRoots []string // *.app / *.lnk roots (macOS, Windows)
	bundleExt   string
	recursive   bool // Windows Start Menu nests shortcuts in folders
	custom      []models.AppEntry
}

// New returns a Registry with the default search roots for the current
// platform.
func New() *Registry {
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "darwin":
		return &Registry{
			bundleRoots: []string{
				"/Applications",
				filepath.Join(home, "Applications"),
			},
			bundleExt: ".app",
		}
	case "windows":
		var roots []string
		if programData := os.Getenv("PROGRAMDATA"); programData != "" {
			roots = append(roots, filepath.Join(programData, "Microsoft", "Windows", "Start Menu", "Programs"))
		}
		if appData := os.Getenv("APPDATA"); appData != "" {
			roots = append(roots, filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs"))
		}
		return &Registry{
			bundleRoots: roots,
			bundleExt:   ".lnk",
			recursive:   true,
		}
	default:
		return &Registry{
			desktopDirs: []string{
				"/usr/share/applications",
				"/usr/local/share/applications",
				filepath.Join(home, ".local/share/applications"),
				filepath.Join(home, ".local/share/flatpak/exports/share/applications"),
				"/var/lib/flatpak/exports/share/applications",
			},
		}
	}
}

// NewWithDirs returns a Registry scanning only the given desktop-entry
// directories. Used by tests and by callers that manage their own roots.
func NewWithDirs(dirs ...string) *Registry {
	return &Registry{desktopDirs: dirs}
}

// NewWithBundles returns a Registry scanning the given bundle roots for
// entries with the given extension.
func NewWithBundles(ext string, roots ...string) *Registry {
	return &Registry{bundleRoots: roots, bundleExt: ext}
}

// SetCustom registers user-declared entries. They are merged ahead of
// platform discovery, so a declaration overrides a discovered entry
// with the same identity.
func (r *Registry) SetCustom(entries []models.AppEntry) {
	r.custom = entries
}

// Discover returns all detected applications sorted case-insensitively
// by display name, deduplicated by identity (first occurrence wins).
// Discovery never fails: unreadable records and missing roots degrade
// to fewer (possibly zero) entries.
func (r *Registry) Discover() []models.AppEntry {
	seen := make(map[string]bool)
	var apps []models.AppEntry

	add := func(entry models.AppEntry) {
		if entry.DesktopID == "" || seen[entry.DesktopID] {
			return
		}
		seen[entry.DesktopID] = true
		apps = append(apps, entry)
	}

	for _, entry := range r.custom {
		add(entry)
	}
	for _, dir := range r.desktopDirs {
		for _, entry := range scanDesktopDir(dir) {
			add(entry)
		}
	}
	for _, root := range r.bundleRoots {
		for _, entry := range scanBundles(root, r.bundleExt, r.recursive) {
			add(entry)
		}
	}

	sort.SliceStable(apps, func(i, j int) bool {
		return strings.ToLower(apps[i].Name) < strings.ToLower(apps[j].Name)
	})
	return apps
}

// scanDesktopDir parses every *.desktop file directly under dir. A
// missing directory yields nothing.
func scanDesktopDir(dir string) []models.AppEntry {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var apps []models.AppEntry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".desktop") {
			continue
		}
		entry, ok := parseDesktopEntry(filepath.Join(dir, de.Name()))
		if !ok {
			continue
		}
		apps = append(apps, entry)
	}
	return apps
}
