package consistency

import (
	"strings"
	"testing"

	"github.com/jeduden/agentlint/internal/lint"
)

func doc(name, content string) *lint.Document {
	return lint.NewDocument(name, "/ws/"+name, content)
}

func TestReferencedFilesExist(t *testing.T) {
	docs := []*lint.Document{
		doc("CLAUDE.md", strings.Join([]string{
			"# Agent",
			"See SOUL.md for personality.",
			"Read `TOOLS.md` before running commands.",
			"Check SKILL.md for each skill.",
			"Also see `TOOLS.md` and load TOOLS.md again.",
			"Refer to heartbeat.md daily.",
		}, "\n")),
		doc("SOUL.md", "# Soul"),
	}
	diags := (&ReferencedFilesExist{}).Check(docs)
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %+v", len(diags), diags)
	}
	if diags[0].Message != `Referenced file "TOOLS.md" not found in workspace.` {
		t.Errorf("unexpected message %q", diags[0].Message)
	}
	if diags[0].Line != 3 {
		t.Errorf("line = %d, want 3", diags[0].Line)
	}
	if diags[1].Message != `Referenced file "heartbeat.md" not found in workspace.` {
		t.Errorf("unexpected message %q", diags[1].Message)
	}
	for _, d := range diags {
		if d.Severity != lint.Critical || d.File != "CLAUDE.md" {
			t.Errorf("unexpected diagnostic %+v", d)
		}
	}
}

func TestReferencedFilesExist_BacktickOnly(t *testing.T) {
	docs := []*lint.Document{doc("AGENTS.md", "Identity lives in `IDENTITY.md`, twice: `IDENTITY.md`.")}
	diags := (&ReferencedFilesExist{}).Check(docs)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %+v", len(diags), diags)
	}
	if diags[0].Fix != "Create IDENTITY.md or remove the reference." {
		t.Errorf("unexpected fix %q", diags[0].Fix)
	}
}

func TestReferencedFilesExist_CaseInsensitiveMatch(t *testing.T) {
	docs := []*lint.Document{
		doc("CLAUDE.md", "See MEMORY.md"),
		doc("memory.md", ""),
	}
	if diags := (&ReferencedFilesExist{}).Check(docs); len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %+v", diags)
	}
}

func TestReferencedFilesExist_PerDocumentDedup(t *testing.T) {
	docs := []*lint.Document{
		doc("CLAUDE.md", "see USER.md"),
		doc("SOUL.md", "see USER.md"),
	}
	diags := (&ReferencedFilesExist{}).Check(docs)
	if len(diags) != 2 {
		t.Fatalf("expected one diagnostic per document, got %+v", diags)
	}
	if diags[0].File != "CLAUDE.md" || diags[1].File != "SOUL.md" {
		t.Errorf("unexpected files %q, %q", diags[0].File, diags[1].File)
	}
}

func TestNamingConvention(t *testing.T) {
	mixed := []*lint.Document{
		doc("CLAUDE.md", ""),
		doc("SOUL.md", ""),
		doc("tools.md", ""),
		doc(".claude/notes.md", ""),
		doc("Heartbeat.md", ""),
	}
	diags := (&NamingConvention{}).Check(mixed)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	want := "Mixed file naming: 2 UPPERCASE (CLAUDE.md, SOUL.md), 1 lowercase (tools.md). Pick one convention."
	if diags[0].Message != want {
		t.Errorf("message = %q, want %q", diags[0].Message, want)
	}

	uniform := []*lint.Document{doc("CLAUDE.md", ""), doc("Heartbeat.md", "")}
	if diags := (&NamingConvention{}).Check(uniform); len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %+v", diags)
	}
}

func TestNamingConvention_UncasedNameCountsAsBoth(t *testing.T) {
	docs := []*lint.Document{doc("CLAUDE.md", ""), doc("2025.md", "")}
	diags := (&NamingConvention{}).Check(docs)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	want := "Mixed file naming: 2 UPPERCASE (CLAUDE.md, 2025.md), 1 lowercase (2025.md). Pick one convention."
	if diags[0].Message != want {
		t.Errorf("message = %q, want %q", diags[0].Message, want)
	}
}

func TestNoDuplicateInstructions(t *testing.T) {
	line := "- Always check permissions before writing files"
	docs := []*lint.Document{
		doc("CLAUDE.md", "# Rules\n"+line),
		doc("SOUL.md", "# Soul\n\n*   always  CHECK permissions before writing files"),
	}
	diags := (&NoDuplicateInstructions{}).Check(docs)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %+v", len(diags), diags)
	}
	d := diags[0]
	if d.File != "SOUL.md" || d.Line != 3 {
		t.Errorf("unexpected location %s:%d", d.File, d.Line)
	}
	if !strings.HasPrefix(d.Message, "Duplicate instruction also in CLAUDE.md:") {
		t.Errorf("unexpected message %q", d.Message)
	}
}

func TestNoDuplicateInstructions_Skips(t *testing.T) {
	tests := []struct {
		name string
		docs []*lint.Document
	}{
		{"same file", []*lint.Document{doc("CLAUDE.md", "- Always check permissions first\n- Always check permissions first")}},
		{"short line", []*lint.Document{doc("CLAUDE.md", "- Run tests"), doc("SOUL.md", "- Run tests")}},
		{"short after normalize", []*lint.Document{doc("CLAUDE.md", "-      run the tests"), doc("SOUL.md", "-      run the tests")}},
		{"prose", []*lint.Document{doc("CLAUDE.md", "Always check permissions first"), doc("SOUL.md", "Always check permissions first")}},
		{"auxiliary", []*lint.Document{doc("CLAUDE.md", "- Always check permissions first"), doc("memory/a.md", "- Always check permissions first")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diags := (&NoDuplicateInstructions{}).Check(tt.docs); len(diags) != 0 {
				t.Errorf("expected no diagnostics, got %+v", diags)
			}
		})
	}
}

func TestIdentityAlignment(t *testing.T) {
	docs := []*lint.Document{
		doc("SOUL.md", "---\nname: Nova\n---\n# SOUL.md - Orion\n**Name:** Vega\n"),
		doc("IDENTITY.md", "- **Name:** Lyra\n"),
		doc("TOOLS.md", "**Name:** Ignored"),
	}
	diags := (&IdentityAlignment{}).Check(docs)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	for _, n := range []string{"Nova", "Orion", "Vega", "Lyra"} {
		if !strings.Contains(diags[0].Message, n) {
			t.Errorf("message %q missing %q", diags[0].Message, n)
		}
	}
	if strings.Contains(diags[0].Message, "Ignored") {
		t.Errorf("TOOLS.md is not an identity file: %q", diags[0].Message)
	}
}

func TestIdentityAlignment_FewNames(t *testing.T) {
	docs := []*lint.Document{
		doc("SOUL.md", "**Name:** Nova\n"),
		doc("IDENTITY.md", "**Name:** Nova\nname: \"the agent\"\n"),
	}
	if diags := (&IdentityAlignment{}).Check(docs); len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %+v", diags)
	}
}

func TestIdentityAlignment_CountsCharacters(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		want  int
	}{
		// Two characters, six bytes.
		{"short hangul", "노바", 0},
		// Nine characters, twenty-seven bytes.
		{"long hangul", "가나다라마바사아자", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := []*lint.Document{
				doc("SOUL.md", "**Name:** Nova\n**Name:** Orion\n"),
				doc("IDENTITY.md", "**Name:** Vega\n**Name:** "+tt.extra+"\n"),
			}
			if diags := (&IdentityAlignment{}).Check(docs); len(diags) != tt.want {
				t.Errorf("expected %d diagnostics, got %+v", tt.want, diags)
			}
		})
	}
}
