// Package customapps manages user-declared application definitions that
// platform discovery cannot see.
package customapps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"matugenium/internal/models"
)

// Store persists custom app definitions as YAML.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file. An empty path uses
// the default location.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns the conventional custom apps file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "matugenium", "apps.yaml")
}

// Load returns all custom app definitions. A missing or unreadable file
// yields no definitions; discovery must keep working without it.
func (s *Store) Load() []models.AppDefinition {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var cfg models.AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil
	}

	defs := make([]models.AppDefinition, 0, len(cfg.Apps))
	for _, def := range cfg.Apps {
		def, err := sanitizeDefinition(def)
		if err != nil {
			continue
		}
		defs = append(defs, def)
	}
	return defs
}

// Entries returns the stored definitions converted to registry entries.
func (s *Store) Entries() []models.AppEntry {
	defs := s.Load()
	entries := make([]models.AppEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, def.Entry(s.path))
	}
	return entries
}

// Add appends a definition to the store, rejecting duplicates by id.
func (s *Store) Add(def models.AppDefinition) error {
	def, err := sanitizeDefinition(def)
	if err != nil {
		return err
	}

	existing := s.Load()
	for _, d := range existing {
		if strings.EqualFold(d.ID, def.ID) {
			return fmt.Errorf("custom app with id %q already exists", def.ID)
		}
	}

	return s.save(append(existing, def))
}

func (s *Store) save(defs []models.AppDefinition) error {
	data, err := yaml.Marshal(models.AppConfig{Apps: defs})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func sanitizeDefinition(def models.AppDefinition) (models.AppDefinition, error) {
	def.ID = strings.TrimSpace(def.ID)
	def.Name = strings.TrimSpace(def.Name)
	def.Icon = strings.TrimSpace(def.Icon)
	def.GenericName = strings.TrimSpace(def.GenericName)

	if def.ID == "" {
		return def, fmt.Errorf("id is required")
	}
	if def.Name == "" {
		return def, fmt.Errorf("name is required")
	}

	cleaned := make([]string, 0, len(def.Keywords))
	for _, kw := range def.Keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	def.Keywords = cleaned

	return def, nil
}
