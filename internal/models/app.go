package models

import (
	"path/filepath"
	"strings"
)

// AppEntry represents one installed application found during discovery.
// Entries are built once per discovery pass and never mutated afterwards.
type AppEntry struct {
	DesktopID   string   // Platform-unique identity (desktop file name, bundle name)
	Name        string   // Display name, always non-empty
	GenericName string   // Localized generic name ("Web Browser")
	Icon        string   // Icon token: either a theme name or a path
	Exec        string   // Launch command line
	DesktopFile string   // Path of the source record (desktop file or bundle)
	Keywords    []string // Ordered keywords from the source record
}

// Aliases returns every name form the entry can be matched by: the
// identity, the identity without extension, display name, generic name,
// icon token and keywords. Duplicates and empty strings are dropped;
// order follows the field order above.
func (a AppEntry) Aliases() []string {
	candidates := []string{
		a.DesktopID,
		strings.TrimSuffix(a.DesktopID, filepath.Ext(a.DesktopID)),
		a.Name,
		a.GenericName,
		a.Icon,
	}
	candidates = append(candidates, a.Keywords...)

	seen := make(map[string]bool, len(candidates))
	aliases := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		aliases = append(aliases, c)
	}
	return aliases
}

// AppDefinition is the YAML structure for user-declared applications
// that platform discovery cannot see (AppImages, scripts, niche launchers).
type AppDefinition struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	GenericName string   `yaml:"generic_name,omitempty"`
	Icon        string   `yaml:"icon,omitempty"`
	Exec        string   `yaml:"exec,omitempty"`
	Keywords    []string `yaml:"keywords,omitempty"`
}

// AppConfig is the root YAML structure of the custom apps file.
type AppConfig struct {
	Apps []AppDefinition `yaml:"apps"`
}

// Entry converts a definition into a registry entry.
func (d AppDefinition) Entry(sourcePath string) AppEntry {
	return AppEntry{
		DesktopID:   d.ID,
		Name:        d.Name,
		GenericName: d.GenericName,
		Icon:        d.Icon,
		Exec:        d.Exec,
		DesktopFile: sourcePath,
		Keywords:    d.Keywords,
	}
}
