// Package match resolves a free-text query to one application entry
// using a layered exact/contains/fuzzy strategy. Literal or near-literal
// name fragments always beat merely similar-looking names.
package match

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"matugenium/internal/models"
)

// minScore is the fuzzy similarity floor below which a best candidate is
// still rejected.
const minScore = 0.45

var (
	// ErrEmptyQuery is returned when the query is empty after trimming.
	ErrEmptyQuery = errors.New("app name cannot be empty")
	// ErrNoApps is returned when there are no entries to match against.
	ErrNoApps = errors.New("no applications detected")
	// ErrNoMatch is returned when no candidate is acceptable.
	ErrNoMatch = errors.New("no matching application")
)

// Match returns the entry best matching query. With exact set, only a
// full case-insensitive alias equality counts. Otherwise containment is
// tried before fuzzy ranking; ties always resolve to the first entry in
// input order.
func Match(query string, apps []models.AppEntry, exact bool) (models.AppEntry, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return models.AppEntry{}, ErrEmptyQuery
	}
	if len(apps) == 0 {
		return models.AppEntry{}, ErrNoApps
	}

	if exact {
		if app, ok := exactMatch(normalized, apps); ok {
			return app, nil
		}
		return models.AppEntry{}, fmt.Errorf("%w: no exact match for %q", ErrNoMatch, query)
	}

	candidates := containsMatches(normalized, apps)
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	if len(candidates) == 0 {
		candidates = apps
	}

	app, score := fuzzyBest(normalized, candidates)
	if score < minScore {
		return models.AppEntry{}, fmt.Errorf("%w: no likely match for %q", ErrNoMatch, query)
	}
	return app, nil
}

// exactMatch returns the first entry with an alias equal to the
// normalized query.
func exactMatch(query string, apps []models.AppEntry) (models.AppEntry, bool) {
	for _, app := range apps {
		for _, alias := range app.Aliases() {
			if strings.ToLower(alias) == query {
				return app, true
			}
		}
	}
	return models.AppEntry{}, false
}

// containsMatches returns every entry where the query contains an alias
// or an alias contains the query.
func containsMatches(query string, apps []models.AppEntry) []models.AppEntry {
	var hits []models.AppEntry
	for _, app := range apps {
		for _, alias := range app.Aliases() {
			lower := strings.ToLower(alias)
			if strings.Contains(lower, query) || strings.Contains(query, lower) {
				hits = append(hits, app)
				break
			}
		}
	}
	return hits
}

// fuzzyBest scores every candidate by its best alias similarity and
// returns the overall winner. The first candidate wins ties.
func fuzzyBest(query string, apps []models.AppEntry) (models.AppEntry, float64) {
	best := apps[0]
	bestScore := -1.0
	for _, app := range apps {
		score := 0.0
		for _, alias := range app.Aliases() {
			if s := Similarity(query, strings.ToLower(alias)); s > score {
				score = s
			}
		}
		if score > bestScore {
			best = app
			bestScore = score
		}
	}
	return best, bestScore
}

// Similarity returns a symmetric ratio in [0,1] between two strings:
// twice the number of runes on their longest common subsequence divided
// by the total rune count. Identical strings score 1.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dmp := diffmatchpatch.New()
	common := 0
	for _, d := range dmp.DiffMain(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			common += utf8.RuneCountInString(d.Text)
		}
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	return 2.0 * float64(common) / float64(total)
}
