// Package structure holds rules about how agent files are organized:
// the presence of an entry point, sections, heading levels and size.
package structure

import "github.com/jeduden/agentlint/internal/rule"

func init() {
	rule.Register(&HasMainFile{})
	rule.Register(&HasSections{})
	rule.Register(&HeadingHierarchy{})
	rule.Register(&FileSize{Max: 500})
	rule.Register(&ModularFiles{})
	rule.Register(&NoEmptySections{})
}
