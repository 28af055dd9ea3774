// Package testkit holds checks shared by the tests of several packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"natlint/internal/ast"
	"natlint/internal/doctree"
	"natlint/internal/source"
)

// CheckSpanInvariants verifies the spans of a parsed file and its tree:
// 1) the unit span lies within the file content
// 2) every item span is non-empty, belongs to the file and lies in the unit span
// 3) every child lies within its parent
func CheckSpanInvariants(unit *ast.SourceUnit, items []*doctree.Item, sf *source.File) error {
	if unit == nil || sf == nil {
		return fmt.Errorf("nil unit or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	if unit.Span.File != sf.ID {
		return fmt.Errorf("unit span points to different file id: got=%d want=%d", unit.Span.File, sf.ID)
	}
	if unit.Span.End > lenContent || unit.Span.Start > unit.Span.End {
		return fmt.Errorf("unit span %v outside content of %d bytes", unit.Span, lenContent)
	}
	if len(items) > 0 && unit.Span.Empty() {
		return fmt.Errorf("unit span is empty but %d items exist", len(items))
	}

	var walkErr error
	doctree.Walk(items, func(parent, item *doctree.Item) bool {
		sp := item.Loc()
		switch {
		case sp.End <= sp.Start:
			walkErr = fmt.Errorf("empty span for %s %q: %v", item.Kind(), item.Name(), sp)
		case sp.File != sf.ID:
			walkErr = fmt.Errorf("span file mismatch for %s %q: got=%d want=%d", item.Kind(), item.Name(), sp.File, sf.ID)
		case sp.Start < unit.Span.Start || sp.End > unit.Span.End:
			walkErr = fmt.Errorf("%s %q span %v is outside unit span %v", item.Kind(), item.Name(), sp, unit.Span)
		case parent != nil && (sp.Start < parent.Loc().Start || sp.End > parent.Loc().End):
			walkErr = fmt.Errorf("%s %q span %v is outside parent span %v", item.Kind(), item.Name(), sp, parent.Loc())
		}
		return walkErr == nil
	})
	return walkErr
}
