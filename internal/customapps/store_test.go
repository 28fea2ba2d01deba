package customapps

import (
	"os"
	"path/filepath"
	"testing"

	"matugenium/internal/models"
)

func TestStore_AddAndLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "apps.yaml"))

	err := store.Add(models.AppDefinition{
		ID:       "my-appimage",
		Name:     "My AppImage",
		Icon:     "/opt/my/icon.png",
		Keywords: []string{"tool", " ", "image"},
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	defs := store.Load()
	if len(defs) != 1 {
		t.Fatalf("Load returned %d defs, want 1", len(defs))
	}
	if defs[0].ID != "my-appimage" {
		t.Errorf("ID = %q", defs[0].ID)
	}
	if len(defs[0].Keywords) != 2 {
		t.Errorf("Keywords = %v, want blank entries stripped", defs[0].Keywords)
	}
}

func TestStore_AddDuplicateID(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "apps.yaml"))

	if err := store.Add(models.AppDefinition{ID: "tool", Name: "Tool"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Add(models.AppDefinition{ID: "TOOL", Name: "Other"}); err == nil {
		t.Error("Add should reject duplicate ids case-insensitively")
	}
}

func TestStore_AddValidation(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "apps.yaml"))

	if err := store.Add(models.AppDefinition{Name: "No ID"}); err == nil {
		t.Error("Add should require an id")
	}
	if err := store.Add(models.AppDefinition{ID: "no-name"}); err == nil {
		t.Error("Add should require a name")
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "apps.yaml"))
	if defs := store.Load(); len(defs) != 0 {
		t.Errorf("Load on missing file = %v, want none", defs)
	}
}

func TestStore_LoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.yaml")
	if err := os.WriteFile(path, []byte("apps: [nope"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	if defs := store.Load(); len(defs) != 0 {
		t.Errorf("Load on broken file = %v, want none", defs)
	}
}

func TestStore_Entries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.yaml")
	store := NewStore(path)
	if err := store.Add(models.AppDefinition{ID: "tool", Name: "Tool"}); err != nil {
		t.Fatal(err)
	}

	entries := store.Entries()
	if len(entries) != 1 {
		t.Fatalf("Entries returned %d, want 1", len(entries))
	}
	if entries[0].DesktopID != "tool" || entries[0].DesktopFile != path {
		t.Errorf("Entries[0] = %+v", entries[0])
	}
}
