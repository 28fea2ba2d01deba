package models

import (
	"reflect"
	"testing"
)

func TestAppEntry_Aliases(t *testing.T) {
	tests := []struct {
		name  string
		entry AppEntry
		want  []string
	}{
		{
			name: "Full entry",
			entry: AppEntry{
				DesktopID:   "org.gnome.Nautilus.desktop",
				Name:        "Files",
				GenericName: "File Manager",
				Icon:        "org.gnome.Nautilus",
				Keywords:    []string{"folder", "file"},
			},
			want: []string{
				"org.gnome.Nautilus.desktop",
				"org.gnome.Nautilus",
				"Files",
				"File Manager",
				"folder",
				"file",
			},
		},
		{
			name: "Empty fields dropped",
			entry: AppEntry{
				DesktopID: "foo.desktop",
				Name:      "Foo",
			},
			want: []string{"foo.desktop", "foo", "Foo"},
		},
		{
			name: "Duplicates collapse",
			entry: AppEntry{
				DesktopID: "kitty.desktop",
				Name:      "kitty",
				Icon:      "kitty",
				Keywords:  []string{"kitty", "terminal"},
			},
			want: []string{"kitty.desktop", "kitty", "terminal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entry.Aliases()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Aliases() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppDefinition_Entry(t *testing.T) {
	def := AppDefinition{
		ID:       "my-tool",
		Name:     "My Tool",
		Icon:     "my-tool",
		Keywords: []string{"utility"},
	}

	entry := def.Entry("/home/u/.config/matugenium/apps.yaml")

	if entry.DesktopID != "my-tool" {
		t.Errorf("DesktopID = %q, want my-tool", entry.DesktopID)
	}
	if entry.Name != "My Tool" {
		t.Errorf("Name = %q, want My Tool", entry.Name)
	}
	if entry.DesktopFile != "/home/u/.config/matugenium/apps.yaml" {
		t.Errorf("DesktopFile = %q", entry.DesktopFile)
	}
	if len(entry.Keywords) != 1 || entry.Keywords[0] != "utility" {
		t.Errorf("Keywords = %v", entry.Keywords)
	}
}
