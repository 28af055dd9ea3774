// Package doctree builds the tree of documented declarations of a file:
// every declaration paired with the NatSpec block written above it.
package doctree

import (
	"natlint/internal/ast"
	"natlint/internal/natspec"
	"natlint/internal/source"
)

// Item is one declaration with its documentation. Members of a contract
// are its Children.
type Item struct {
	Source   ast.Decl
	Comments natspec.Comments
	Children []*Item
}

func (it *Item) Kind() ast.DeclKind { return it.Source.Kind() }
func (it *Item) Loc() source.Span   { return it.Source.Loc() }
func (it *Item) Name() string       { return it.Source.DeclName() }

func (it *Item) AsContract() (*ast.ContractDefinition, bool) {
	c, ok := it.Source.(*ast.ContractDefinition)
	return c, ok
}

func (it *Item) AsFunction() (*ast.FunctionDefinition, bool) {
	f, ok := it.Source.(*ast.FunctionDefinition)
	return f, ok
}

func (it *Item) AsStruct() (*ast.StructDefinition, bool) {
	s, ok := it.Source.(*ast.StructDefinition)
	return s, ok
}

func (it *Item) AsEnum() (*ast.EnumDefinition, bool) {
	e, ok := it.Source.(*ast.EnumDefinition)
	return e, ok
}

func (it *Item) AsError() (*ast.ErrorDefinition, bool) {
	e, ok := it.Source.(*ast.ErrorDefinition)
	return e, ok
}

func (it *Item) AsEvent() (*ast.EventDefinition, bool) {
	e, ok := it.Source.(*ast.EventDefinition)
	return e, ok
}

func (it *Item) AsVariable() (*ast.VariableDefinition, bool) {
	v, ok := it.Source.(*ast.VariableDefinition)
	return v, ok
}

// Walk calls f for every item in pre-order with its parent (nil for roots).
// Returning false skips the item's children.
func Walk(items []*Item, f func(parent, item *Item) bool) {
	walk(nil, items, f)
}

func walk(parent *Item, items []*Item, f func(parent, item *Item) bool) {
	for _, it := range items {
		if f(parent, it) {
			walk(it, it.Children, f)
		}
	}
}
