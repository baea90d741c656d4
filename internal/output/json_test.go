package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jeduden/agentlint/internal/engine"
)

func TestJSONFormatter_Report(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got jsonReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}

	if got.Workspace != "/ws" || got.Score != 96 {
		t.Errorf("unexpected header: workspace=%q score=%d", got.Workspace, got.Score)
	}
	if len(got.Categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(got.Categories))
	}
	want := jsonCategory{
		Category: "clarity",
		Name:     "Clarity",
		Score:    95,
		Weight:   0.25,
		Diagnostics: []jsonDiagnostic{{
			Severity: "warning",
			Category: "clarity",
			Rule:     "clarity/no-vague-instructions",
			File:     "SOUL.md",
			Line:     4,
			Message:  "Vague instruction: \"try to\"",
		}},
	}
	if diff := cmp.Diff(want, got.Categories[1]); diff != "" {
		t.Errorf("clarity category mismatch (-want +got):\n%s", diff)
	}
	if len(got.Diagnostics) != 3 {
		t.Errorf("expected 3 diagnostics, got %d", len(got.Diagnostics))
	}
	if diff := cmp.Diff([]jsonFile{{Name: "SOUL.md", Lines: 5}}, got.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), `"timestamp": "2025-03-01T12:00:00Z"`) {
		t.Errorf("unexpected timestamp encoding:\n%s", buf.String())
	}
}

func TestJSONFormatter_OmitsEmptyLineAndFix(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw struct {
		Diagnostics []map[string]any `json:"diagnostics"`
	}
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	first := raw.Diagnostics[0]
	if _, ok := first["line"]; ok {
		t.Error("line 0 should be omitted")
	}
	if first["fix"] != "Create a CLAUDE.md file." {
		t.Errorf("unexpected fix %v", first["fix"])
	}
	if _, ok := raw.Diagnostics[1]["fix"]; ok {
		t.Error("empty fix should be omitted")
	}
}

func TestJSONFormatter_EmptyListsAreArrays(t *testing.T) {
	cats, total := engine.Score(nil)
	res := &engine.LintResult{Workspace: "/ws", Categories: cats, TotalScore: total}

	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"diagnostics": []`) || !strings.Contains(out, `"files": []`) {
		t.Errorf("expected empty arrays:\n%s", out)
	}
}
