package lint

import "strings"

// MainFileNames are the logical names accepted as the agent's entry point.
var MainFileNames = []string{"CLAUDE.md", "AGENTS.md", ".claude/CLAUDE.md"}

// auxiliaryPrefixes mark working documents that are not core instructions.
var auxiliaryPrefixes = []string{"compound/", "memory/"}

// IsMainName reports whether name is a root-level main file name.
func IsMainName(name string) bool {
	return name == "CLAUDE.md" || name == "AGENTS.md"
}

// MainDocument returns the first root-level CLAUDE.md or AGENTS.md, or nil.
func MainDocument(docs []*Document) *Document {
	for _, d := range docs {
		if IsMainName(d.Name) {
			return d
		}
	}
	return nil
}

// FindDocument returns the document with the given name, or nil.
func FindDocument(docs []*Document, name string) *Document {
	for _, d := range docs {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// IsAuxiliary reports whether name lives in a working-document directory.
func IsAuxiliary(name string) bool {
	for _, p := range auxiliaryPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// CoreDocuments returns the Markdown documents outside the auxiliary
// directories, in input order.
func CoreDocuments(docs []*Document) []*Document {
	var core []*Document
	for _, d := range docs {
		if d.IsMarkdown() && !IsAuxiliary(d.Name) {
			core = append(core, d)
		}
	}
	return core
}

// JoinContent concatenates the content of the documents accepted by keep.
func JoinContent(docs []*Document, keep func(*Document) bool) string {
	var parts []string
	for _, d := range docs {
		if keep(d) {
			parts = append(parts, d.Content)
		}
	}
	return strings.Join(parts, "\n")
}
