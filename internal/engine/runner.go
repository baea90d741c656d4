package engine

import (
	"context"
	"time"

	"github.com/jeduden/agentlint/internal/config"
	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/log"
	"github.com/jeduden/agentlint/internal/rule"
	"golang.org/x/sync/semaphore"
)

// Runner drives the scoring pipeline: it drops ignored documents, runs
// every enabled rule over the remaining set, applies per-file rule
// settings, and scores the diagnostics.
type Runner struct {
	Config *config.Config
	Rules  []rule.Rule
	// Parallel bounds the number of rules evaluated at once. Values
	// below 2 evaluate sequentially. The output is the same either way.
	Parallel int
	Log      *log.Logger
	// Now stamps the result; defaults to time.Now.
	Now func() time.Time
}

// Run evaluates docs, the documents of workspace, and returns the
// scored result. It never fails: a rule that panics is reported as a
// diagnostic.
func (r *Runner) Run(workspace string, docs []*lint.Document) *LintResult {
	docs = r.filter(docs)
	r.Log.Printf("workspace: %s (%d documents)", workspace, len(docs))
	for _, d := range docs {
		r.Log.Printf("document: %s (%d lines)", d.Name, len(d.Lines))
	}

	rules := EnabledRules(r.Rules, r.Config)
	slots := make([][]lint.Diagnostic, len(rules))
	took := make([]time.Duration, len(rules))

	check := func(i int) {
		start := time.Now()
		slots[i] = CheckRule(rules[i], docs)
		took[i] = time.Since(start)
	}

	if r.Parallel > 1 && len(rules) > 1 {
		ctx := context.Background()
		sem := semaphore.NewWeighted(int64(r.Parallel))
		for i := range rules {
			_ = sem.Acquire(ctx, 1)
			go func(i int) {
				defer sem.Release(1)
				check(i)
			}(i)
		}
		// Wait for every in-flight rule.
		_ = sem.Acquire(ctx, int64(r.Parallel))
	} else {
		for i := range rules {
			check(i)
		}
	}

	var diags []lint.Diagnostic
	for i, rl := range rules {
		r.Log.Printf("rule: %s %d diagnostics in %s", rl.ID(), len(slots[i]), took[i])
		diags = append(diags, slots[i]...)
	}
	diags = AdjustDiagnostics(r.Config, diags)

	cats, total := Score(diags)
	r.Log.Printf("score: %d", total)

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return &LintResult{
		Workspace:   workspace,
		Documents:   docs,
		Categories:  cats,
		TotalScore:  total,
		Diagnostics: diags,
		Timestamp:   now(),
	}
}

// filter drops documents whose name matches an ignore pattern.
func (r *Runner) filter(docs []*lint.Document) []*lint.Document {
	if r.Config == nil || len(r.Config.Ignore) == 0 {
		return docs
	}
	kept := make([]*lint.Document, 0, len(docs))
	for _, d := range docs {
		if config.MatchesAny(r.Config.Ignore, d.Name) {
			r.Log.Printf("ignored: %s", d.Name)
			continue
		}
		kept = append(kept, d)
	}
	return kept
}
