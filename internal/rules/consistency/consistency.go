// Package consistency holds rules that compare documents against each
// other: references, naming, duplicated instructions and identity.
package consistency

import "github.com/jeduden/agentlint/internal/rule"

func init() {
	rule.Register(&ReferencedFilesExist{})
	rule.Register(&NamingConvention{})
	rule.Register(&NoDuplicateInstructions{})
	rule.Register(&IdentityAlignment{})
}
