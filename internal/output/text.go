package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jeduden/agentlint/internal/engine"
	"github.com/jeduden/agentlint/internal/lint"
)

const barWidth = 20

// TextFormatter renders the score, one bar per category and the
// diagnostics grouped by file. When Color is true, severities and
// scores are colored.
type TextFormatter struct {
	Color bool
}

// textWriter keeps the first write error so Format can check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// Format implements Formatter.
func (f *TextFormatter) Format(w io.Writer, res *engine.LintResult) error {
	paint := f.palette()
	tw := &textWriter{w: w}

	tw.printf("%s %s\n\n", paint.title("agentlint"), res.Workspace)
	tw.printf("Score: %s/100\n\n", paint.score(res.TotalScore, fmt.Sprintf("%d", res.TotalScore)))

	for _, cs := range res.Categories {
		filled := cs.Score * barWidth / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		tw.printf("  %-14s %s %3d\n", cs.Category.Label(), paint.score(cs.Score, bar), cs.Score)
	}
	if len(res.Diagnostics) == 0 {
		tw.printf("\nNo issues found in %d files.\n", len(res.Documents))
		return tw.err
	}

	for _, file := range fileOrder(res.Diagnostics) {
		tw.printf("\n%s\n", paint.title(file))
		for _, d := range res.Diagnostics {
			if d.File != file {
				continue
			}
			loc := ""
			if d.Line > 0 {
				loc = fmt.Sprintf("L%d ", d.Line)
			}
			tw.printf("  %s %s%s  %s\n", paint.severity(d.Severity), loc, d.Message, paint.dim(d.RuleID))
			if d.Fix != "" {
				tw.printf("    %s %s\n", paint.dim("fix:"), d.Fix)
			}
		}
	}

	counts := map[lint.Severity]int{}
	for _, d := range res.Diagnostics {
		counts[d.Severity]++
	}
	tw.printf("\n%d critical, %d warnings, %d info across %d files\n",
		counts[lint.Critical], counts[lint.Warning], counts[lint.Info], len(res.Documents))
	return tw.err
}

// fileOrder lists the files of diags in order of first appearance.
func fileOrder(diags []lint.Diagnostic) []string {
	seen := map[string]bool{}
	var files []string
	for _, d := range diags {
		if !seen[d.File] {
			seen[d.File] = true
			files = append(files, d.File)
		}
	}
	return files
}

type palette struct {
	red, yellow, green, cyan, gray, bold *color.Color
}

func (f *TextFormatter) palette() *palette {
	p := &palette{
		red:    color.New(color.FgRed, color.Bold),
		yellow: color.New(color.FgYellow),
		green:  color.New(color.FgGreen),
		cyan:   color.New(color.FgCyan),
		gray:   color.New(color.FgHiBlack),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.red, p.yellow, p.green, p.cyan, p.gray, p.bold} {
		if f.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) score(score int, s string) string {
	switch {
	case score >= 80:
		return p.green.Sprint(s)
	case score >= 50:
		return p.yellow.Sprint(s)
	}
	return p.red.Sprint(s)
}

func (p *palette) severity(s lint.Severity) string {
	label := fmt.Sprintf("%-8s", s)
	switch s {
	case lint.Critical:
		return p.red.Sprint(label)
	case lint.Warning:
		return p.yellow.Sprint(label)
	}
	return p.cyan.Sprint(label)
}

func (p *palette) title(s string) string { return p.bold.Sprint(s) }

func (p *palette) dim(s string) string { return p.gray.Sprint(s) }
