package profile

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// PaletteDiff summarizes how a regenerated palette differs from the one
// it replaced.
type PaletteDiff struct {
	Identical    bool
	LinesAdded   int
	LinesRemoved int
}

// DiffPalettes computes a line-level diff between two palette files.
func DiffPalettes(oldData, newData []byte) *PaletteDiff {
	oldText := string(oldData)
	newText := string(newData)
	if oldText == newText {
		return &PaletteDiff{Identical: true}
	}

	dmp := diffmatchpatch.New()
	oldChars, newChars, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lines)

	result := &PaletteDiff{}
	for _, d := range diffs {
		count := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			result.LinesAdded += count
		case diffmatchpatch.DiffDelete:
			result.LinesRemoved += count
		}
	}
	return result
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
