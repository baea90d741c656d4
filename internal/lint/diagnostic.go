package lint

// Severity indicates the severity level of a diagnostic.
type Severity string

// Severity levels, from most to least severe.
const (
	Critical Severity = "critical"
	Warning  Severity = "warning"
	Info     Severity = "info"
)

// Category groups rules into the quality dimensions that are scored.
type Category string

// Scored categories.
const (
	Structure    Category = "structure"
	Clarity      Category = "clarity"
	Completeness Category = "completeness"
	Security     Category = "security"
	Consistency  Category = "consistency"
)

// RemoteReady is an auxiliary category. Its diagnostics are reported but
// carry no weight in the total score.
const RemoteReady Category = "remote-ready"

// ScoredCategories lists the weighted categories in report order.
var ScoredCategories = []Category{Structure, Clarity, Completeness, Security, Consistency}

// Label returns the display name of a category.
func (c Category) Label() string {
	switch c {
	case Structure:
		return "Structure"
	case Clarity:
		return "Clarity"
	case Completeness:
		return "Completeness"
	case Security:
		return "Security"
	case Consistency:
		return "Consistency"
	case RemoteReady:
		return "Remote Ready"
	}
	return string(c)
}

// Scored reports whether c contributes to the total score.
func (c Category) Scored() bool {
	for _, s := range ScoredCategories {
		if s == c {
			return true
		}
	}
	return false
}

// WorkspaceFile is the File value of diagnostics that concern the
// workspace as a whole rather than one document.
const WorkspaceFile = "(workspace)"

// Diagnostic represents a single lint finding.
type Diagnostic struct {
	Severity Severity
	Category Category
	RuleID   string
	File     string
	// Line is 1-based; 0 means the finding has no line.
	Line    int
	Message string
	Fix     string
}
