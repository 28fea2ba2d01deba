// Package state persists profile bookkeeping as a single JSON document.
//
// Every mutation is load-modify-save with an atomic replace, so a crash
// never leaves a half-written file. Two concurrent invocations racing on
// the same file are last-writer-wins; there is no locking.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// fallbackKey is used when normalization consumes the whole input.
const fallbackKey = "unknown-app"

// ProfileRecord is the persisted metadata for one generated profile.
// Records are replaced wholesale, never partially updated.
type ProfileRecord struct {
	Name         string `json:"name"`
	DesktopID    string `json:"desktop_id"`
	OutputDir    string `json:"output_dir"`
	SourceImage  string `json:"source_image"`
	End4JSONPath string `json:"end4_json_path,omitempty"`
}

// document is the root persisted structure. Top-level keys other than
// "profiles" are carried through load/save untouched.
type document struct {
	Profiles map[string]ProfileRecord
	Extra    map[string]json.RawMessage
}

// Store reads and writes the profile state file.
type Store struct {
	path string
}

// DefaultPath returns the platform-conventional state file location,
// honoring XDG_STATE_HOME.
func DefaultPath() string {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "matugenium", "state.json")
}

// NewStore creates a Store backed by the given file. An empty path uses
// DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// load reads the whole document. A missing, unreadable or corrupt file
// is treated as "no state yet" and yields a fresh empty document.
func (s *Store) load() document {
	doc := document{Profiles: map[string]ProfileRecord{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return doc
	}

	for key, value := range raw {
		if key != "profiles" {
			if doc.Extra == nil {
				doc.Extra = map[string]json.RawMessage{}
			}
			doc.Extra[key] = value
			continue
		}
		var profiles map[string]ProfileRecord
		if err := json.Unmarshal(value, &profiles); err == nil && profiles != nil {
			doc.Profiles = profiles
		}
	}
	return doc
}

// save writes the document to a temporary sibling and atomically
// replaces the target file.
func (s *Store) save(doc document) error {
	merged := make(map[string]any, len(doc.Extra)+1)
	for key, value := range doc.Extra {
		merged[key] = value
	}
	merged["profiles"] = doc.Profiles

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}

// RecordProfile upserts the record under key.
func (s *Store) RecordProfile(key string, record ProfileRecord) error {
	doc := s.load()
	doc.Profiles[key] = record
	return s.save(doc)
}

// RemoveProfile deletes the record under key and returns it, or nil
// when the key was absent. Removing an absent key is not an error.
func (s *Store) RemoveProfile(key string) (*ProfileRecord, error) {
	doc := s.load()
	record, ok := doc.Profiles[key]
	if ok {
		delete(doc.Profiles, key)
	}
	if err := s.save(doc); err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// AllProfiles returns a snapshot copy of the profiles mapping.
func (s *Store) AllProfiles() map[string]ProfileRecord {
	doc := s.load()
	snapshot := make(map[string]ProfileRecord, len(doc.Profiles))
	for key, record := range doc.Profiles {
		snapshot[key] = record
	}
	return snapshot
}

// GetProfile returns the record under key, or nil when absent.
func (s *Store) GetProfile(key string) *ProfileRecord {
	doc := s.load()
	record, ok := doc.Profiles[key]
	if !ok {
		return nil
	}
	return &record
}

// FindProfileKey resolves a human-friendly query to a stored key: the
// query itself (normalized) first, then an exact match against each
// record's name or identity, then a substring match. Returns "" when
// nothing fits.
func (s *Store) FindProfileKey(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return ""
	}

	profiles := s.AllProfiles()
	if _, ok := profiles[NormalizeKey(normalized)]; ok {
		return NormalizeKey(normalized)
	}

	// Scan in sorted key order so a query matching several records
	// always resolves to the same one.
	keys := make([]string, 0, len(profiles))
	for key := range profiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Exact name/identity equality before any substring hit, so a
	// query that is a full name never loses to a longer near-name.
	for _, key := range keys {
		record := profiles[key]
		if normalized == strings.ToLower(record.Name) || normalized == strings.ToLower(record.DesktopID) {
			return key
		}
	}
	for _, key := range keys {
		record := profiles[key]
		if strings.Contains(strings.ToLower(record.Name), normalized) ||
			strings.Contains(strings.ToLower(record.DesktopID), normalized) {
			return key
		}
	}
	return ""
}
