package rules

import (
	"github.com/samber/lo"

	"natlint/internal/ast"
	"natlint/internal/doctree"
	"natlint/internal/natspec"
	"natlint/internal/source"
)

// element is one formal element a tag must document: a parameter, return
// variable, field or enum variant.
type element struct {
	name *ast.Ident
	span source.Span
}

// correspondence matches the entries of one tag against the elements of a
// declaration. Counts are compared first; when they agree, every named
// element needs an entry whose leading word is its name.
type correspondence struct {
	tag natspec.CommentTag
	// unnamed is the parse error reported for an element without a name.
	// Empty means unnamed elements are skipped.
	unnamed string
	// unnamedAtDecl reports the parse error at the declaration span
	// instead of the element span.
	unnamedAtDecl bool
}

func (c correspondence) check(item *doctree.Item, elems []element) (ViolationError, source.Span, bool) {
	entries := item.Comments.IncludeTag(c.tag)
	switch {
	case len(entries) < len(elems):
		return missingComment(c.tag), item.Loc(), true
	case len(entries) > len(elems):
		return tooManyComments(c.tag), item.Loc(), true
	}

	for _, el := range elems {
		if el.name == nil {
			if c.unnamed == "" {
				continue
			}
			loc := el.span
			if c.unnamedAtDecl {
				loc = item.Loc()
			}
			return parseError(c.unnamed), loc, true
		}
		documented := lo.ContainsBy(entries, func(e natspec.Entry) bool {
			return e.LeadingWord() == el.name.Name
		})
		if !documented {
			return missingCommentFor(c.tag, el.name.Name), el.span, true
		}
	}
	return ViolationError{}, source.Span{}, false
}

func paramElements(params []ast.Parameter) []element {
	return lo.Map(params, func(p ast.Parameter, _ int) element {
		return element{name: p.Name, span: p.Span}
	})
}

// named uses the name span when present.
func named(name *ast.Ident, span source.Span) element {
	if name != nil {
		span = name.Span
	}
	return element{name: name, span: span}
}
