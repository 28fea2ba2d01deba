package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"matugenium/internal/match"
	"matugenium/internal/models"
)

// Remove deletes the tracked profile resolved from query: the state
// store is consulted first (by key, stored name or identity); when that
// misses, a live match against apps supplies the key. A query that
// resolves to nothing tracked is a NotTracked no-op.
//
// Deletion targets must stay inside their managed roots. A target that
// escapes aborts the whole removal with ErrUnsafePath before anything
// is deleted; state and filesystem stay unchanged.
func (g *Generator) Remove(query string, apps []models.AppEntry, exact bool) (*Result, error) {
	key := g.Store.FindProfileKey(query)
	if key == "" && len(apps) > 0 {
		if app, err := match.Match(query, apps, exact); err == nil {
			key = Key(app)
		} else {
			g.logf("match miss: %v", err)
		}
	}
	if key == "" {
		return &Result{Outcome: OutcomeNotTracked}, nil
	}

	record := g.Store.GetProfile(key)
	if record == nil {
		return &Result{Key: key, Outcome: OutcomeNotTracked}, nil
	}

	// Validate every target before deleting anything.
	if record.OutputDir != "" && !pathWithin(g.Config.OutputRoot, record.OutputDir) {
		return nil, fmt.Errorf("%w: refusing to remove %s (managed root %s)",
			ErrUnsafePath, record.OutputDir, g.Config.OutputRoot)
	}
	if record.End4JSONPath != "" && g.Config.End4Dir != "" && !pathWithin(g.Config.End4Dir, record.End4JSONPath) {
		return nil, fmt.Errorf("%w: refusing to remove mirror %s (managed root %s)",
			ErrUnsafePath, record.End4JSONPath, g.Config.End4Dir)
	}

	result := &Result{
		Key:        key,
		Outcome:    OutcomeRemoved,
		OutputDir:  record.OutputDir,
		MirrorPath: record.End4JSONPath,
	}

	if g.DryRun {
		g.logf("dry-run: would remove %s", record.OutputDir)
		return result, nil
	}

	if record.OutputDir != "" && fileExists(record.OutputDir) {
		if err := os.RemoveAll(record.OutputDir); err != nil {
			return nil, fmt.Errorf("remove output directory: %w", err)
		}
	}
	if record.End4JSONPath != "" && fileExists(record.End4JSONPath) {
		if err := os.Remove(record.End4JSONPath); err != nil {
			return nil, fmt.Errorf("remove mirror copy: %w", err)
		}
		pruneEmptyParents(record.End4JSONPath, 2)
	}

	if _, err := g.Store.RemoveProfile(key); err != nil {
		return nil, fmt.Errorf("forget profile: %w", err)
	}
	return result, nil
}

// pruneEmptyParents removes up to depth empty parent directories of
// path. Non-empty directories stop the walk; errors are ignored.
func pruneEmptyParents(path string, depth int) {
	dir := filepath.Dir(path)
	for i := 0; i < depth; i++ {
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
