// Package security holds rules that catch leaked credentials, unsafe
// commands and missing safety guidance in agent files.
package security

import "github.com/jeduden/agentlint/internal/rule"

func init() {
	rule.Register(&NoSecrets{})
	rule.Register(&HasSecuritySection{})
	rule.Register(&NoDangerousCommands{})
	rule.Register(&PromptInjectionGuard{})
}
