package rule

import (
	"sort"

	"github.com/jeduden/agentlint/internal/lint"
)

var registry []Rule

// categoryOrder is the catalogue order of rule groups.
var categoryOrder = []lint.Category{
	lint.Structure,
	lint.Clarity,
	lint.Completeness,
	lint.Security,
	lint.Consistency,
	lint.RemoteReady,
}

// Register adds a rule to the global registry. It is meant to be called
// from init functions only.
func Register(r Rule) {
	registry = append(registry, r)
}

// All returns a copy of all registered rules in catalogue order: grouped
// by category, then in registration order.
func All() []Rule {
	result := make([]Rule, len(registry))
	copy(result, registry)
	sort.SliceStable(result, func(i, j int) bool {
		return rank(result[i].Category()) < rank(result[j].Category())
	})
	return result
}

// ByID returns the registered rule with the given ID, or nil.
func ByID(id string) Rule {
	for _, r := range registry {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

// Reset clears the registry. Used for testing.
func Reset() {
	registry = nil
}

func rank(c lint.Category) int {
	for i, oc := range categoryOrder {
		if oc == c {
			return i
		}
	}
	return len(categoryOrder)
}
