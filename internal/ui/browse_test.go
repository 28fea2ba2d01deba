package ui

import (
	"strings"
	"testing"

	"matugenium/internal/config"
	"matugenium/internal/models"
	"matugenium/internal/profile"
	"matugenium/internal/state"
)

func newTestBrowse(t *testing.T, apps []models.AppEntry) BrowseModel {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{OutputRoot: dir}
	store := state.NewStore(dir + "/state.json")
	return NewBrowse(profile.New(cfg, store), apps)
}

func testApps() []models.AppEntry {
	return []models.AppEntry{
		{DesktopID: "firefox.desktop", Name: "Firefox"},
		{DesktopID: "org.gnome.Nautilus.desktop", Name: "Files"},
		{DesktopID: "code.desktop", Name: "Visual Studio Code"},
	}
}

func TestBrowseFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{"empty shows all", "", 3},
		{"matches display name", "fire", 1},
		{"matches identity", "nautilus", 1},
		{"case insensitive", "VISUAL", 1},
		{"no hits", "zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestBrowse(t, testApps())
			m.filter.SetValue(tt.filter)
			m.applyFilter()
			if len(m.visible) != tt.want {
				t.Errorf("visible = %d, want %d", len(m.visible), tt.want)
			}
		})
	}
}

func TestBrowseFilterClampsCursor(t *testing.T) {
	m := newTestBrowse(t, testApps())
	m.cursor = 2

	m.filter.SetValue("fire")
	m.applyFilter()

	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	app, ok := m.selected()
	if !ok || app.Name != "Firefox" {
		t.Errorf("selected = %v %v, want Firefox", app.Name, ok)
	}
}

func TestBrowseSelectedEmpty(t *testing.T) {
	m := newTestBrowse(t, nil)
	if _, ok := m.selected(); ok {
		t.Error("selected() on empty list reported ok")
	}
}

func TestBrowseStatusLine(t *testing.T) {
	m := newTestBrowse(t, testApps())
	m.force = true
	m.status = "generated Firefox"

	line := m.statusLine()
	for _, want := range []string{"3 apps", "force on", "generated Firefox"} {
		if !strings.Contains(line, want) {
			t.Errorf("statusLine() = %q, missing %q", line, want)
		}
	}
}
