package rules

import (
	"slices"

	"github.com/samber/lo"

	"natlint/internal/ast"
)

// All returns every rule, grouped by kind in ast.Kinds order.
func All() []Rule {
	var out []Rule
	for _, k := range ast.Kinds {
		out = append(out, catalog[k]...)
	}
	return out
}

// ForKind returns the rules targeting kind in registration order.
func ForKind(kind ast.DeclKind) []Rule {
	if int(kind) >= len(catalog) {
		return nil
	}
	return catalog[kind]
}

// Defaults returns the rules enabled without configuration.
func Defaults() []Rule {
	return lo.Filter(All(), func(r Rule, _ int) bool { return r.EnabledByDefault() })
}

// Lookup finds the rule of kind named name.
func Lookup(kind ast.DeclKind, name string) (Rule, bool) {
	return lo.Find(ForKind(kind), func(r Rule) bool { return r.Name() == name })
}

// Names returns the distinct rule names across all kinds, sorted.
func Names() []string {
	names := lo.Uniq(lo.Map(All(), func(r Rule, _ int) string { return r.Name() }))
	slices.Sort(names)
	return names
}

// ConfigKey is the configuration key of a rule name, e.g.
// "MissingInheritdoc" becomes "missing_inheritdoc".
func ConfigKey(name string) string {
	return lo.SnakeCase(name)
}
