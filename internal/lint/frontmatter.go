package lint

import (
	"go.abhg.dev/goldmark/frontmatter"
)

// FrontMatter decodes the document's YAML (or TOML) front matter. It
// returns nil when there is none or when it is not a valid mapping.
func FrontMatter(d *Document) map[string]any {
	_, pc := d.parse()
	data := frontmatter.Get(pc)
	if data == nil {
		return nil
	}
	var m map[string]any
	if err := data.Decode(&m); err != nil {
		return nil
	}
	return m
}
