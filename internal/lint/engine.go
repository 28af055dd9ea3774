// Package lint runs the active rules over the declaration tree of a file.
package lint

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"natlint/internal/ast"
	"natlint/internal/diag"
	"natlint/internal/doctree"
	"natlint/internal/parser"
	"natlint/internal/rules"
	"natlint/internal/source"
)

// ErrParse marks errors caused by a file that does not parse.
var ErrParse = errors.New("source failed to parse")

// ParseFailure carries the syntax diagnostics of a file that did not parse.
type ParseFailure struct {
	Path        string
	Diagnostics []diag.Diagnostic
}

func (e *ParseFailure) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("%s: parse failed", e.Path)
	}
	first := e.Diagnostics[0]
	if n := len(e.Diagnostics); n > 1 {
		return fmt.Sprintf("%s: %s: %s (and %d more)", e.Path, first.Code.ID(), first.Message, n-1)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, first.Code.ID(), first.Message)
}

// Finding is a violation with the byte offset it starts at.
type Finding struct {
	Violation rules.Violation
	Offset    uint32
}

// Engine holds the active rules grouped by target kind. It is safe for
// concurrent use.
type Engine struct {
	byKind map[ast.DeclKind][]rules.Rule
	active []rules.Rule
}

// NewEngine groups active by kind. Within a kind the rules keep the order
// of active.
func NewEngine(active []rules.Rule) *Engine {
	return &Engine{
		byKind: lo.GroupBy(active, func(r rules.Rule) ast.DeclKind { return r.Target() }),
		active: active,
	}
}

// Rules returns the active rules.
func (e *Engine) Rules() []rules.Rule { return e.active }

// Check walks items in pre-order and runs the rules of each item's kind.
func (e *Engine) Check(items []*doctree.Item) []rules.Violation {
	var out []rules.Violation
	doctree.Walk(items, func(parent, item *doctree.Item) bool {
		for _, r := range e.byKind[item.Kind()] {
			if v := r.Check(parent, item); v != nil {
				out = append(out, *v)
			}
		}
		return true
	})
	return out
}

// BuildAndCheck parses the file, builds its tree and checks it.
func (e *Engine) BuildAndCheck(fs *source.FileSet, id source.FileID) ([]Finding, error) {
	items, err := BuildTree(fs, id)
	if err != nil {
		return nil, err
	}
	violations := e.Check(items)
	return lo.Map(violations, func(v rules.Violation, _ int) Finding {
		return Finding{Violation: v, Offset: v.Loc.Start}
	}), nil
}

// BuildTree parses the file and returns its declaration tree. A file with
// syntax errors yields an error marked with ErrParse.
func BuildTree(fs *source.FileSet, id source.FileID) ([]*doctree.Item, error) {
	file := fs.Get(id)
	res := parser.ParseFile(fs, id, parser.Options{MaxErrors: 16})
	if res.Failed() {
		res.Bag.Sort()
		res.Bag.Dedup()
		failure := &ParseFailure{Path: file.Path, Diagnostics: res.Bag.Items()}
		return nil, errors.Mark(failure, ErrParse)
	}
	return doctree.Build(file, res.Unit, res.Comments)
}

// BuildAndCheck lints src as a file called name with the given rules.
func BuildAndCheck(name string, src []byte, active []rules.Rule) ([]Finding, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return NewEngine(active).BuildAndCheck(fs, id)
}
