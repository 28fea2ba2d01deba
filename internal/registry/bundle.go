package registry

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"matugenium/internal/models"
)

// scanBundles lists application bundles (macOS *.app directories) or
// shortcuts (Windows *.lnk files) under root. Identity and name derive
// from the base file name; no descriptor parsing happens on bundle
// platforms.
func scanBundles(root, ext string, recursive bool) []models.AppEntry {
	var paths []string
	if recursive {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
				paths = append(paths, path)
			}
			return nil
		})
	} else {
		dirEntries, err := os.ReadDir(root)
		if err != nil {
			return nil
		}
		for _, de := range dirEntries {
			if strings.EqualFold(filepath.Ext(de.Name()), ext) {
				paths = append(paths, filepath.Join(root, de.Name()))
			}
		}
	}
	sort.Strings(paths)

	apps := make([]models.AppEntry, 0, len(paths))
	for _, path := range paths {
		base := filepath.Base(path)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		if name == "" {
			continue
		}
		apps = append(apps, models.AppEntry{
			DesktopID:   name + ext,
			Name:        name,
			DesktopFile: path,
		})
	}
	return apps
}
