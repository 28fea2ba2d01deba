package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDesktopFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write desktop file: %v", err)
	}
	return path
}

func TestParseDesktopEntry(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		wantOK   bool
		wantName string
	}{
		{
			name: "Valid entry",
			content: `[Desktop Entry]
Type=Application
Name=Files
GenericName=File Manager
Icon=org.gnome.Nautilus
Exec=nautilus --new-window %U
Keywords=folder;manager;explore;disk;filesystem;
`,
			wantOK:   true,
			wantName: "Files",
		},
		{
			name: "No name rejected",
			content: `[Desktop Entry]
Type=Application
Exec=foo
`,
			wantOK: false,
		},
		{
			name: "Non application type rejected",
			content: `[Desktop Entry]
Type=Link
Name=Some Link
`,
			wantOK: false,
		},
		{
			name: "NoDisplay rejected",
			content: `[Desktop Entry]
Type=Application
Name=Hidden Tool
NoDisplay=true
`,
			wantOK: false,
		},
		{
			name: "Hidden rejected",
			content: `[Desktop Entry]
Type=Application
Name=Ghost
Hidden=true
`,
			wantOK: false,
		},
		{
			name: "Localized name first seen wins",
			content: `[Desktop Entry]
Type=Application
Name[de]=Dateien
Name=Files
`,
			wantOK:   true,
			wantName: "Dateien",
		},
		{
			name: "Fields outside Desktop Entry group ignored",
			content: `[Desktop Action new-window]
Name=New Window
[Desktop Entry]
Type=Application
Name=Terminal
`,
			wantOK:   true,
			wantName: "Terminal",
		},
		{
			name: "Comments and blank lines skipped",
			content: `# generated
[Desktop Entry]

Type=Application
# localized below
Name=Editor
`,
			wantOK:   true,
			wantName: "Editor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDesktopFile(t, tmpDir, "test.desktop", tt.content)
			entry, ok := parseDesktopEntry(path)
			if ok != tt.wantOK {
				t.Fatalf("parseDesktopEntry() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if entry.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", entry.Name, tt.wantName)
			}
			if entry.DesktopID != "test.desktop" {
				t.Errorf("DesktopID = %q, want test.desktop", entry.DesktopID)
			}
		})
	}
}

func TestParseDesktopEntry_Keywords(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeDesktopFile(t, tmpDir, "kw.desktop", `[Desktop Entry]
Type=Application
Name=Browser
Keywords=web; internet ;;www;
`)

	entry, ok := parseDesktopEntry(path)
	if !ok {
		t.Fatal("expected entry")
	}

	want := []string{"web", "internet", "www"}
	if len(entry.Keywords) != len(want) {
		t.Fatalf("Keywords = %v, want %v", entry.Keywords, want)
	}
	for i, kw := range want {
		if entry.Keywords[i] != kw {
			t.Errorf("Keywords[%d] = %q, want %q", i, entry.Keywords[i], kw)
		}
	}
}

func TestParseDesktopEntry_Unreadable(t *testing.T) {
	if _, ok := parseDesktopEntry(filepath.Join(t.TempDir(), "missing.desktop")); ok {
		t.Error("expected unreadable file to yield no entry")
	}
}
