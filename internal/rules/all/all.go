// Package all links every rule package into the binary so their init
// functions populate the rule registry.
package all

import (
	_ "github.com/jeduden/agentlint/internal/rules/clarity"
	_ "github.com/jeduden/agentlint/internal/rules/completeness"
	_ "github.com/jeduden/agentlint/internal/rules/consistency"
	_ "github.com/jeduden/agentlint/internal/rules/remoteready"
	_ "github.com/jeduden/agentlint/internal/rules/security"
	_ "github.com/jeduden/agentlint/internal/rules/structure"
)
