// Package discovery finds the agent configuration files of a workspace.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jeduden/agentlint/internal/lint"
)

// RootFiles are the canonical files looked up at the workspace root, in
// scan order.
var RootFiles = []string{
	"CLAUDE.md",
	"AGENTS.md",
	"SOUL.md",
	"IDENTITY.md",
	"USER.md",
	"TOOLS.md",
	"SECURITY.md",
	"FORMATTING.md",
	"HEARTBEAT.md",
	"MEMORY.md",
	"BOOTSTRAP.md",
	".clauderc",
	".agentlinterrc",
}

// AgentDirs are scanned (non-recursively) for *.md and *.txt files.
var AgentDirs = []string{".claude", "claude", ".cursor", ".windsurf"}

// CompoundDir is scanned for *.md files.
const CompoundDir = "compound"

// Scan reads the agent configuration files of the workspace exposed by
// fsys. root is the workspace's path on disk and is only used to fill in
// Document.Path. Files that do not exist are skipped; any other read
// error aborts the scan.
func Scan(fsys fs.FS, root string) ([]*lint.Document, error) {
	var docs []*lint.Document

	for _, name := range RootFiles {
		info, err := fs.Stat(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", name, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		d, err := read(fsys, root, name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	for _, dir := range AgentDirs {
		found, err := scanDir(fsys, root, dir, "*.{md,txt}")
		if err != nil {
			return nil, err
		}
		docs = append(docs, found...)
	}

	found, err := scanDir(fsys, root, CompoundDir, "*.md")
	if err != nil {
		return nil, err
	}
	return append(docs, found...), nil
}

// ScanDir scans the workspace directory dir on the local filesystem.
func ScanDir(dir string) (string, []*lint.Document, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving absolute path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", nil, fmt.Errorf("workspace: %w", err)
	}
	if !info.IsDir() {
		return "", nil, fmt.Errorf("workspace %q is not a directory", abs)
	}
	docs, err := Scan(os.DirFS(abs), abs)
	return abs, docs, err
}

// scanDir reads the regular files directly inside dir that match
// pattern, in name order.
func scanDir(fsys fs.FS, root, dir, pattern string) ([]*lint.Document, error) {
	matches, err := doublestar.Glob(fsys, path.Join(dir, pattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("scanning %q: %w", dir, err)
	}
	sort.Strings(matches)

	docs := make([]*lint.Document, 0, len(matches))
	for _, name := range matches {
		d, err := read(fsys, root, name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func read(fsys fs.FS, root, name string) (*lint.Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return lint.NewDocument(name, filepath.Join(root, filepath.FromSlash(name)), string(data)), nil
}
