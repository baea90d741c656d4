package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content), Mode: 0o644}
}

func names(t *testing.T, fsys fs.FS) []string {
	t.Helper()
	docs, err := Scan(fsys, "/ws")
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	var out []string
	for _, d := range docs {
		out = append(out, d.Name)
	}
	return out
}

func TestScan_RootFilesInCanonicalOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"TOOLS.md":       file("# Tools\n"),
		"AGENTS.md":      file("# Agents\n"),
		"CLAUDE.md":      file("# Claude\n"),
		".agentlinterrc": file("{}\n"),
		"README.md":      file("# Readme\n"),
		"notes.txt":      file("notes\n"),
	}

	want := []string{"CLAUDE.md", "AGENTS.md", "TOOLS.md", ".agentlinterrc"}
	if diff := cmp.Diff(want, names(t, fsys)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_AgentDirs(t *testing.T) {
	fsys := fstest.MapFS{
		"CLAUDE.md":                file("# Claude\n"),
		".claude/settings.md":      file("# Settings\n"),
		".claude/commands.txt":     file("commands\n"),
		".claude/config.json":      file("{}\n"),
		".claude/agents/nested.md": file("# Nested\n"),
		".cursor/rules.md":         file("# Rules\n"),
		"claude/a.md":              file("# A\n"),
		".windsurf/b.txt":          file("b\n"),
		".vscode/ignored.md":       file("# No\n"),
		"compound/learnings.md":    file("# Learnings\n"),
		"compound/raw.txt":         file("raw\n"),
		"compound/deep/inner.md":   file("# Inner\n"),
		"memory/2025-01-01.md":     file("# Day\n"),
		".claude/dir.md/inside.md": file("# Inside\n"),
	}

	want := []string{
		"CLAUDE.md",
		".claude/commands.txt",
		".claude/settings.md",
		"claude/a.md",
		".cursor/rules.md",
		".windsurf/b.txt",
		"compound/learnings.md",
	}
	if diff := cmp.Diff(want, names(t, fsys)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_SkipsDirectoryNamedLikeRootFile(t *testing.T) {
	fsys := fstest.MapFS{
		"SOUL.md":      &fstest.MapFile{Mode: fs.ModeDir | 0o755},
		"SOUL.md/x.md": file("# X\n"),
		"IDENTITY.md":  file("# Identity\n"),
	}
	want := []string{"IDENTITY.md"}
	if diff := cmp.Diff(want, names(t, fsys)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_Empty(t *testing.T) {
	docs, err := Scan(fstest.MapFS{}, "/ws")
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}

func TestScan_DocumentFields(t *testing.T) {
	fsys := fstest.MapFS{
		"CLAUDE.md":           file("# Claude\n\n## Rules\n- be brief\n"),
		".claude/settings.md": file("# Settings\n"),
	}
	docs, err := Scan(fsys, "/ws")
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}

	d := docs[0]
	if d.Path != filepath.Join("/ws", "CLAUDE.md") {
		t.Errorf("unexpected path %q", d.Path)
	}
	if d.Content != "# Claude\n\n## Rules\n- be brief\n" {
		t.Errorf("unexpected content %q", d.Content)
	}
	if len(d.Lines) != 5 {
		t.Errorf("expected 5 lines, got %d", len(d.Lines))
	}
	if len(d.Sections) != 2 || d.Sections[1].Heading != "Rules" {
		t.Errorf("unexpected sections %+v", d.Sections)
	}
	if docs[1].Path != filepath.Join("/ws", ".claude", "settings.md") {
		t.Errorf("unexpected path %q", docs[1].Path)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"CLAUDE.md":             "# Claude\n",
		".claude/settings.md":   "# Settings\n",
		"compound/learnings.md": "# Learnings\n",
	} {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	abs, docs, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir error: %v", err)
	}
	if abs != dir {
		t.Errorf("expected root %q, got %q", dir, abs)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if docs[2].Path != filepath.Join(dir, "compound", "learnings.md") {
		t.Errorf("unexpected path %q", docs[2].Path)
	}
}

func TestScanDir_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := ScanDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for a missing workspace")
	}

	f := filepath.Join(dir, "CLAUDE.md")
	if err := os.WriteFile(f, []byte("# A\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ScanDir(f); err == nil {
		t.Error("expected error when the workspace is a file")
	}
}
