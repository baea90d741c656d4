package upload

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/user"

	"github.com/jeduden/agentlint/internal/engine"
)

// Limits applied to uploaded reports.
const (
	MaxDiagnostics = 500
	MaxFileNames   = 200
)

// Payload is the JSON body of an upload.
type Payload struct {
	MachineID    string            `json:"machineId"`
	Score        int               `json:"score"`
	Categories   []PayloadCategory `json:"categories"`
	Diagnostics  []PayloadDiag     `json:"diagnostics"`
	FileNames    []string          `json:"fileNames"`
	RulesChecked int               `json:"rulesChecked"`
}

// PayloadCategory is one category score of an upload.
type PayloadCategory struct {
	Name   string  `json:"name"`
	Score  int     `json:"score"`
	Weight float64 `json:"weight"`
}

// PayloadDiag is a diagnostic with its fields truncated for upload.
type PayloadDiag struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Rule     string `json:"rule"`
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

// BuildPayload converts res into an upload payload. catalogueSize is
// reported as rulesChecked when no rule fired.
func BuildPayload(res *engine.LintResult, machineID string, catalogueSize int) *Payload {
	p := &Payload{
		MachineID:   machineID,
		Score:       res.TotalScore,
		Categories:  make([]PayloadCategory, 0, len(res.Categories)),
		Diagnostics: make([]PayloadDiag, 0, min(len(res.Diagnostics), MaxDiagnostics)),
		FileNames:   make([]string, 0, min(len(res.Documents), MaxFileNames)),
	}
	for _, cs := range res.Categories {
		p.Categories = append(p.Categories, PayloadCategory{
			Name:   cs.Category.Label(),
			Score:  cs.Score,
			Weight: cs.Weight,
		})
	}

	fired := map[string]bool{}
	for i, d := range res.Diagnostics {
		fired[d.RuleID] = true
		if i >= MaxDiagnostics {
			continue
		}
		severity := string(d.Severity)
		if severity == "" {
			severity = "info"
		}
		p.Diagnostics = append(p.Diagnostics, PayloadDiag{
			Severity: truncate(severity, 10),
			Category: truncate(string(d.Category), 30),
			Rule:     truncate(d.RuleID, 80),
			File:     truncate(d.File, 200),
			Line:     d.Line,
			Message:  truncate(d.Message, 500),
			Fix:      truncate(d.Fix, 500),
		})
	}
	p.RulesChecked = len(fired)
	if p.RulesChecked == 0 {
		p.RulesChecked = catalogueSize
	}

	for i, d := range res.Documents {
		if i >= MaxFileNames {
			break
		}
		p.FileNames = append(p.FileNames, d.Name)
	}
	return p
}

// MachineID returns an anonymous, stable identifier for this host and
// user: the first 32 hex digits of sha256("<hostname>-<username>"). When
// the user cannot be resolved only the hostname is hashed.
func MachineID() string {
	host, _ := os.Hostname()
	seed := host
	if u, err := user.Current(); err == nil {
		seed = host + "-" + u.Username
	}
	return hashID(seed)
}

func hashID(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:32]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
