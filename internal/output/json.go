package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/jeduden/agentlint/internal/engine"
	"github.com/jeduden/agentlint/internal/lint"
)

// JSONFormatter renders a lint result as one pretty-printed JSON object.
type JSONFormatter struct{}

type jsonReport struct {
	Workspace   string           `json:"workspace"`
	Score       int              `json:"score"`
	Categories  []jsonCategory   `json:"categories"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Files       []jsonFile       `json:"files"`
	Timestamp   time.Time        `json:"timestamp"`
}

type jsonCategory struct {
	Category    string           `json:"category"`
	Name        string           `json:"name"`
	Score       int              `json:"score"`
	Weight      float64          `json:"weight"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Rule     string `json:"rule"`
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

type jsonFile struct {
	Name  string `json:"name"`
	Lines int    `json:"lines"`
}

// Format implements Formatter. Empty lists are encoded as [].
func (f *JSONFormatter) Format(w io.Writer, res *engine.LintResult) error {
	report := jsonReport{
		Workspace:   res.Workspace,
		Score:       res.TotalScore,
		Categories:  make([]jsonCategory, 0, len(res.Categories)),
		Diagnostics: diagnostics(res.Diagnostics),
		Files:       make([]jsonFile, 0, len(res.Documents)),
		Timestamp:   res.Timestamp,
	}
	for _, cs := range res.Categories {
		report.Categories = append(report.Categories, jsonCategory{
			Category:    string(cs.Category),
			Name:        cs.Category.Label(),
			Score:       cs.Score,
			Weight:      cs.Weight,
			Diagnostics: diagnostics(cs.Diagnostics),
		})
	}
	for _, d := range res.Documents {
		report.Files = append(report.Files, jsonFile{Name: d.Name, Lines: len(d.Lines)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func diagnostics(diags []lint.Diagnostic) []jsonDiagnostic {
	items := make([]jsonDiagnostic, 0, len(diags))
	for _, d := range diags {
		items = append(items, jsonDiagnostic{
			Severity: string(d.Severity),
			Category: string(d.Category),
			Rule:     d.RuleID,
			File:     d.File,
			Line:     d.Line,
			Message:  d.Message,
			Fix:      d.Fix,
		})
	}
	return items
}
