package lint

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// Document holds one scanned agent configuration file.
type Document struct {
	// Name is the path relative to the workspace root, with forward
	// slashes for files inside subdirectories.
	Name     string
	Path     string
	Content  string
	Lines    []string
	Sections []Section
}

// NewDocument splits content into lines and sections.
func NewDocument(name, path, content string) *Document {
	lines := strings.Split(content, "\n")
	return &Document{
		Name:     name,
		Path:     path,
		Content:  content,
		Lines:    lines,
		Sections: ParseSections(lines),
	}
}

// IsMarkdown reports whether the document has a .md name.
func (d *Document) IsMarkdown() bool {
	return strings.HasSuffix(d.Name, ".md")
}

// Markdown parses the content with goldmark. Front matter is consumed by
// the parser and is not part of the tree. The tree is built on every
// call; Document itself stays immutable.
func (d *Document) Markdown() ast.Node {
	node, _ := d.parse()
	return node
}

func (d *Document) parse() (ast.Node, parser.Context) {
	md := goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))
	pc := parser.NewContext()
	node := md.Parser().Parse(text.NewReader([]byte(d.Content)), parser.WithContext(pc))
	return node, pc
}

// LineOfOffset converts a byte offset in Content to a 1-based line number.
func (d *Document) LineOfOffset(offset int) int {
	if offset > len(d.Content) {
		offset = len(d.Content)
	}
	return strings.Count(d.Content[:offset], "\n") + 1
}

// HasHeading reports whether any section heading satisfies match.
func (d *Document) HasHeading(match func(heading string) bool) bool {
	for _, s := range d.Sections {
		if match(s.Heading) {
			return true
		}
	}
	return false
}
