package rule

import (
	"testing"

	"github.com/jeduden/agentlint/internal/lint"
)

// stubRule is a minimal Rule implementation for testing.
type stubRule struct {
	id       string
	category lint.Category
}

func (r *stubRule) ID() string                                 { return r.id }
func (r *stubRule) Category() lint.Category                    { return r.category }
func (r *stubRule) Severity() lint.Severity                    { return lint.Warning }
func (r *stubRule) Description() string                        { return "stub" }
func (r *stubRule) Check(_ []*lint.Document) []lint.Diagnostic { return nil }

func withEmptyRegistry(t *testing.T) {
	t.Helper()
	saved := registry
	Reset()
	t.Cleanup(func() { registry = saved })
}

func TestRegisterAndAll(t *testing.T) {
	withEmptyRegistry(t)

	Register(&stubRule{id: "structure/a", category: lint.Structure})
	Register(&stubRule{id: "structure/b", category: lint.Structure})

	all := All()
	if len(all) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(all))
	}
	if all[0].ID() != "structure/a" {
		t.Errorf("expected first rule %q, got %q", "structure/a", all[0].ID())
	}
	if all[1].ID() != "structure/b" {
		t.Errorf("expected second rule %q, got %q", "structure/b", all[1].ID())
	}
}

func TestAll_CatalogueOrder(t *testing.T) {
	withEmptyRegistry(t)

	// Registration order follows package init order, which is not the
	// catalogue order.
	Register(&stubRule{id: "remote-ready/x", category: lint.RemoteReady})
	Register(&stubRule{id: "consistency/x", category: lint.Consistency})
	Register(&stubRule{id: "clarity/x", category: lint.Clarity})
	Register(&stubRule{id: "structure/x", category: lint.Structure})
	Register(&stubRule{id: "clarity/y", category: lint.Clarity})
	Register(&stubRule{id: "security/x", category: lint.Security})
	Register(&stubRule{id: "completeness/x", category: lint.Completeness})

	want := []string{
		"structure/x",
		"clarity/x",
		"clarity/y",
		"completeness/x",
		"security/x",
		"consistency/x",
		"remote-ready/x",
	}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(all))
	}
	for i, id := range want {
		if all[i].ID() != id {
			t.Errorf("position %d: got %q, want %q", i, all[i].ID(), id)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	withEmptyRegistry(t)

	Register(&stubRule{id: "structure/a", category: lint.Structure})

	all := All()
	all[0] = nil

	if All()[0] == nil {
		t.Error("All() should return a copy; mutation affected the registry")
	}
}

func TestByID(t *testing.T) {
	withEmptyRegistry(t)

	r := &stubRule{id: "security/no-secrets", category: lint.Security}
	Register(r)

	if got := ByID("security/no-secrets"); got != r {
		t.Errorf("ByID returned %v, want %v", got, r)
	}
	if got := ByID("nope"); got != nil {
		t.Errorf("expected nil for unknown ID, got %v", got)
	}
}

func TestDiag_UsesRuleDefaults(t *testing.T) {
	r := &stubRule{id: "clarity/x", category: lint.Clarity}
	d := Diag(r, "CLAUDE.md", 4, "msg", "fix it")
	if d.RuleID != "clarity/x" || d.Category != lint.Clarity || d.Severity != lint.Warning {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	if d.File != "CLAUDE.md" || d.Line != 4 || d.Message != "msg" || d.Fix != "fix it" {
		t.Errorf("unexpected diagnostic %+v", d)
	}
}
