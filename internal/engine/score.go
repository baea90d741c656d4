package engine

import (
	"math"
	"time"

	"github.com/jeduden/agentlint/internal/lint"
)

// Weights maps each scored category to its share of the total score.
// The weights sum to 1.
var Weights = map[lint.Category]float64{
	lint.Structure:    0.20,
	lint.Clarity:      0.25,
	lint.Completeness: 0.20,
	lint.Security:     0.20,
	lint.Consistency:  0.15,
}

// Penalties maps a severity to the points it subtracts from its
// category score.
var Penalties = map[lint.Severity]int{
	lint.Critical: 15,
	lint.Warning:  5,
	lint.Info:     1,
}

// CategoryScore is the outcome for one scored category.
type CategoryScore struct {
	Category    lint.Category
	Score       int
	Weight      float64
	Diagnostics []lint.Diagnostic
}

// LintResult is the complete outcome of one run over a workspace.
type LintResult struct {
	Workspace  string
	Documents  []*lint.Document
	Categories []CategoryScore
	TotalScore int
	// Diagnostics holds every diagnostic in catalogue order, including
	// those of unscored categories.
	Diagnostics []lint.Diagnostic
	Timestamp   time.Time
}

// Category returns the score entry for c, or nil when c is not scored.
func (r *LintResult) Category(c lint.Category) *CategoryScore {
	for i := range r.Categories {
		if r.Categories[i].Category == c {
			return &r.Categories[i]
		}
	}
	return nil
}

// Score partitions diags into the scored categories and computes each
// category score and the weighted total. Diagnostics of unscored
// categories are ignored.
func Score(diags []lint.Diagnostic) ([]CategoryScore, int) {
	cats := make([]CategoryScore, len(lint.ScoredCategories))
	for i, c := range lint.ScoredCategories {
		cats[i] = CategoryScore{Category: c, Weight: Weights[c]}
	}

	for _, d := range diags {
		for i := range cats {
			if cats[i].Category == d.Category {
				cats[i].Diagnostics = append(cats[i].Diagnostics, d)
				break
			}
		}
	}

	var total float64
	for i := range cats {
		penalty := 0
		for _, d := range cats[i].Diagnostics {
			penalty += Penalties[d.Severity]
		}
		cats[i].Score = clamp(100-penalty, 0, 100)
		total += float64(cats[i].Score) * cats[i].Weight
	}

	return cats, clamp(int(math.Round(total)), 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
