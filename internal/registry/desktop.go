package registry

import (
	"os"
	"path/filepath"
	"strings"

	"matugenium/internal/models"
)

// parseDesktopEntry reads one freedesktop desktop file and returns the
// entry it describes. Returns false when the file is unreadable, has no
// name, is not of type Application, or is flagged hidden. Repeated name
// fields (localized variants included) keep the first non-empty value.
func parseDesktopEntry(path string) (models.AppEntry, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.AppEntry{}, false
	}

	var (
		name        string
		genericName string
		icon        string
		execCmd     string
		appType     = "Application"
		hidden      bool
		noDisplay   bool
		keywords    []string
		inMainGroup bool
	)

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inMainGroup = line == "[Desktop Entry]"
			continue
		}
		if !inMainGroup {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case key == "Name" || strings.HasPrefix(key, "Name["):
			if name == "" {
				name = value
			}
		case key == "GenericName" || strings.HasPrefix(key, "GenericName["):
			if genericName == "" {
				genericName = value
			}
		case key == "Icon":
			if icon == "" {
				icon = value
			}
		case key == "Exec":
			if execCmd == "" {
				execCmd = value
			}
		case key == "Type":
			appType = value
		case key == "Hidden":
			hidden = strings.EqualFold(value, "true")
		case key == "NoDisplay":
			noDisplay = strings.EqualFold(value, "true")
		case key == "Keywords":
			keywords = splitKeywords(value)
		}
	}

	if name == "" {
		return models.AppEntry{}, false
	}
	if !strings.EqualFold(appType, "Application") {
		return models.AppEntry{}, false
	}
	if hidden || noDisplay {
		return models.AppEntry{}, false
	}

	return models.AppEntry{
		DesktopID:   filepath.Base(path),
		Name:        name,
		GenericName: genericName,
		Icon:        icon,
		Exec:        execCmd,
		DesktopFile: path,
		Keywords:    keywords,
	}, true
}

func splitKeywords(value string) []string {
	var keywords []string
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}
