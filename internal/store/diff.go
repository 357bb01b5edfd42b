package store

import "github.com/code-review-checklists/checklint/pkg/checks"

// Diff is the difference between two recorded runs.
type Diff struct {
	// New are findings present in the current run but not the previous.
	New []checks.Finding `json:"new"`

	// Fixed are findings present in the previous run but not the current.
	Fixed []checks.Finding `json:"fixed"`
}

// DiffRuns compares two runs by finding identity. Findings are matched
// by check name and message, not line number, so unrelated edits that
// shift lines don't show up as churn.
func DiffRuns(prev, curr *Run) Diff {
	var diff Diff

	prevKeys := findingKeys(prev.Findings)
	currKeys := findingKeys(curr.Findings)

	for _, f := range curr.Findings {
		if !prevKeys[findingKey(f)] {
			diff.New = append(diff.New, f)
		}
	}
	for _, f := range prev.Findings {
		if !currKeys[findingKey(f)] {
			diff.Fixed = append(diff.Fixed, f)
		}
	}
	return diff
}

func findingKey(f checks.Finding) string {
	return f.Check + "\x00" + f.Message
}

func findingKeys(findings []checks.Finding) map[string]bool {
	keys := make(map[string]bool, len(findings))
	for _, f := range findings {
		keys[findingKey(f)] = true
	}
	return keys
}
