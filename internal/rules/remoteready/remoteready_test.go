package remoteready

import (
	"testing"

	"github.com/jeduden/agentlint/internal/lint"
)

func doc(name, content string) *lint.Document {
	return lint.NewDocument(name, "/ws/"+name, content)
}

func TestWorkspacePathSpecified(t *testing.T) {
	tests := []struct {
		name string
		docs []*lint.Document
		want int
	}{
		{"no main file", []*lint.Document{doc("SOUL.md", "")}, 0},
		{"missing", []*lint.Document{doc("CLAUDE.md", "# Agent\n")}, 1},
		{"repo assignment", []*lint.Document{doc("CLAUDE.md", "# Agent"), doc("TOOLS.md", "repo=/Users/me/project")}, 0},
		{"working directory", []*lint.Document{doc("AGENTS.md", "Working directory: `/srv/app`")}, 0},
		{"only in memory", []*lint.Document{doc("CLAUDE.md", "# Agent"), doc("memory/x.md", "workspace: /tmp/ws")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := (&WorkspacePathSpecified{}).Check(tt.docs)
			if len(diags) != tt.want {
				t.Fatalf("expected %d diagnostics, got %d: %+v", tt.want, len(diags), diags)
			}
			for _, d := range diags {
				if d.Category != lint.RemoteReady {
					t.Errorf("category = %s, want remote-ready", d.Category)
				}
			}
		})
	}
}

func TestEnvVarsDocumented(t *testing.T) {
	tests := []struct {
		name     string
		docs     []*lint.Document
		want     int
		wantFile string
	}{
		{"no env use", []*lint.Document{doc("CLAUDE.md", "# Agent")}, 0, ""},
		{"undocumented", []*lint.Document{doc("CLAUDE.md", "Use $GITHUB_TOKEN")}, 1, "CLAUDE.md"},
		{"prefers tools", []*lint.Document{doc("CLAUDE.md", "Use $GITHUB_TOKEN"), doc("TOOLS.md", "")}, 1, "TOOLS.md"},
		{"documented", []*lint.Document{doc("CLAUDE.md", "## Environment variables\nUse $GITHUB_TOKEN")}, 0, ""},
		{"export", []*lint.Document{doc("TOOLS.md", "export API_TOKEN=... then use ${API_TOKEN}")}, 0, ""},
		{"env label", []*lint.Document{doc("CLAUDE.md", "ENV:GITHUB_TOKEN\nUse $GITHUB_TOKEN")}, 0, ""},
		{"env label without name", []*lint.Document{doc("CLAUDE.md", "ENV: $GITHUB_TOKEN")}, 1, "CLAUDE.md"},
		{"no anchor file", []*lint.Document{doc("SOUL.md", "Use $GITHUB_TOKEN")}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := (&EnvVarsDocumented{}).Check(tt.docs)
			if len(diags) != tt.want {
				t.Fatalf("expected %d diagnostics, got %d: %+v", tt.want, len(diags), diags)
			}
			if tt.want == 1 && diags[0].File != tt.wantFile {
				t.Errorf("file = %q, want %q", diags[0].File, tt.wantFile)
			}
		})
	}
}

func TestModelSettingsSpecified(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"missing", "# Agent\n", 1},
		{"default model", "default_model: anthropic/claude-opus-4-5", 0},
		{"family name", "We run claude-sonnet for reviews.", 0},
		{"gpt", "Use GPT-4 for summaries.", 0},
		{"runtime line", "Runtime: agent=main | model=x", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := (&ModelSettingsSpecified{}).Check([]*lint.Document{doc("CLAUDE.md", tt.content)})
			if len(diags) != tt.want {
				t.Fatalf("expected %d diagnostics, got %d: %+v", tt.want, len(diags), diags)
			}
			if tt.want == 1 && diags[0].Severity != lint.Info {
				t.Errorf("severity = %s, want info", diags[0].Severity)
			}
		})
	}
}
