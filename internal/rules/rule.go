// Package rules holds the catalog of NatSpec rules.
//
// A rule targets exactly one declaration kind and is a pure function of the
// item and its parent. Rules are immutable values shared across goroutines.
package rules

import (
	"natlint/internal/ast"
	"natlint/internal/doctree"
	"natlint/internal/source"
)

type Rule interface {
	// Name is the rule identifier used in configuration and directives.
	Name() string
	Description() string
	// Target is the only declaration kind the rule inspects.
	Target() ast.DeclKind
	EnabledByDefault() bool
	// Check returns nil when item satisfies the rule. parent is the
	// enclosing item or nil at file level.
	Check(parent, item *doctree.Item) *Violation
}

type meta struct {
	name        string
	description string
	target      ast.DeclKind
	enabled     bool
}

func (m meta) Name() string           { return m.name }
func (m meta) Description() string    { return m.description }
func (m meta) Target() ast.DeclKind   { return m.target }
func (m meta) EnabledByDefault() bool { return m.enabled }

func (m meta) violation(err ViolationError, loc source.Span) *Violation {
	return &Violation{
		RuleName:        m.name,
		RuleDescription: m.description,
		Kind:            m.target,
		Err:             err,
		Loc:             loc,
	}
}

// checkFunc reports a violation error and its location, or ok=false.
type checkFunc func(parent, item *doctree.Item) (err ViolationError, loc source.Span, ok bool)

// funcRule is a rule with bespoke logic.
type funcRule struct {
	meta
	check checkFunc
}

func (r funcRule) Check(parent, item *doctree.Item) *Violation {
	if item.Kind() != r.target {
		return nil
	}
	err, loc, ok := r.check(parent, item)
	if !ok {
		return nil
	}
	return r.violation(err, loc)
}
