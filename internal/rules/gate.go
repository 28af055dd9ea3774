package rules

import (
	"natlint/internal/ast"
	"natlint/internal/doctree"
)

// inConcreteContract reports whether parent is a contract or an abstract
// contract. Interfaces, libraries and file level never match.
func inConcreteContract(parent *doctree.Item) bool {
	if parent == nil {
		return false
	}
	c, ok := parent.AsContract()
	return ok && c.IsConcrete()
}

func exposed(vis ast.Visibility, override bool) bool {
	return vis == ast.VisPublic || vis == ast.VisExternal || override
}

// inherited reports whether the item defers its documentation to a base.
func inherited(item *doctree.Item) bool {
	_, ok := item.Comments.FindInheritdocBase()
	return ok
}
