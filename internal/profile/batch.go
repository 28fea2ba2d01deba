package profile

import (
	"fmt"

	"matugenium/internal/models"
)

// Summary aggregates one generate-all pass.
type Summary struct {
	Succeeded int
	Failed    int
	Skipped   int
	Failures  []string // "App Name: reason", discovery order
}

// Total returns the number of applications visited.
func (s *Summary) Total() int {
	return s.Succeeded + s.Failed + s.Skipped
}

// GenerateAll processes every application strictly sequentially in the
// given (discovery) order. A per-application failure is recorded and
// processing continues; the batch always completes.
func (g *Generator) GenerateAll(apps []models.AppEntry, force bool) *Summary {
	summary := &Summary{}
	existing := g.Store.AllProfiles()
	total := len(apps)

	for _, app := range apps {
		key := Key(app)
		if _, tracked := existing[key]; tracked && !force {
			summary.Skipped++
			g.logf("[skip] %s (exists)", app.Name)
			continue
		}

		g.logf("[%d/%d] generating %s", summary.Total()+1, total, app.Name)
		result, err := g.Generate(app, force)
		if err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, fmt.Sprintf("%s: %v", app.Name, err))
			g.logf("[fail] %s: %v", app.Name, err)
			continue
		}
		if result.Outcome == OutcomeSkipped {
			// A sibling invocation recorded it between snapshot and now.
			summary.Skipped++
			continue
		}
		summary.Succeeded++
		g.logf("[ok] %s", app.Name)
	}
	return summary
}
