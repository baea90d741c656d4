package lint

import (
	"regexp"
	"strings"
)

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(\S.*)`)

// Section is a heading and the lines it introduces, up to the next heading.
type Section struct {
	Heading string
	Level   int
	// StartLine and EndLine are 0-based and inclusive. StartLine is
	// always the heading line.
	StartLine int
	EndLine   int
	Content   string
}

// Body returns the section's lines after the heading line.
func (s Section) Body() []string {
	lines := strings.Split(s.Content, "\n")
	return lines[1:]
}

// ParseSections splits lines into heading-delimited sections. Lines
// before the first heading belong to no section.
func ParseSections(lines []string) []Section {
	var sections []Section
	var cur *Section

	for i, line := range lines {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if cur != nil {
			cur.EndLine = i - 1
			cur.Content = strings.Join(lines[cur.StartLine:i], "\n")
			sections = append(sections, *cur)
		}
		cur = &Section{
			Heading:   strings.TrimSpace(m[2]),
			Level:     len(m[1]),
			StartLine: i,
			EndLine:   i,
		}
	}

	if cur != nil {
		cur.EndLine = len(lines) - 1
		cur.Content = strings.Join(lines[cur.StartLine:], "\n")
		sections = append(sections, *cur)
	}

	return sections
}
