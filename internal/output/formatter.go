package output

import (
	"fmt"
	"io"

	"github.com/jeduden/agentlint/internal/engine"
)

// Formatter renders a lint result.
type Formatter interface {
	Format(w io.Writer, res *engine.LintResult) error
}

// New returns the formatter for the named output format.
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{Color: color}, nil
	case "json":
		return &JSONFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want text or json)", format)
}
