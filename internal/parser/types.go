package parser

import (
	"natlint/internal/ast"
	"natlint/internal/diag"
	"natlint/internal/token"
)

// parseType parses a type expression:
//
//	Ident {'.' Ident} | 'address' 'payable' | mapping(K [name] => V [name])
//	| function (params) {attr} [returns (params)]
//
// followed by any number of '[...]' array suffixes.
func (p *Parser) parseType() (ast.TypeName, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		return p.parseTypeAfter(p.advance())
	case token.KwMapping:
		return p.parseMapping()
	case token.KwFunction:
		return p.parseFunctionType()
	default:
		p.err(diag.SynExpectType, "expected type name, got "+describe(tok))
		return ast.TypeName{Span: tok.Span}, false
	}
}

// parseTypeAfter continues a user or elementary type whose first
// identifier has already been consumed.
func (p *Parser) parseTypeAfter(first token.Token) (ast.TypeName, bool) {
	if first.Text == "address" && p.at(token.KwPayable) {
		p.advance()
	} else if _, _, ok := p.parsePathAfter(first); !ok {
		return ast.TypeName{}, false
	}
	return p.parseArraySuffix(first)
}

func (p *Parser) parseArraySuffix(first token.Token) (ast.TypeName, bool) {
	for p.at(token.LBracket) {
		if _, ok := p.skipBalanced(); !ok {
			return ast.TypeName{}, false
		}
	}
	sp := p.spanFrom(first.Span)
	return ast.TypeName{Text: p.file.Text(sp), Span: sp}, true
}

func (p *Parser) parseMapping() (ast.TypeName, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynExpectLParen, "expected '(' after mapping"); !ok {
		return ast.TypeName{}, false
	}
	if _, ok := p.parseType(); !ok {
		return ast.TypeName{}, false
	}
	if p.at(token.Ident) { // named key
		p.advance()
	}
	if _, ok := p.expect(token.FatArrow, diag.SynExpectFatArrow, "expected '=>'"); !ok {
		return ast.TypeName{}, false
	}
	if _, ok := p.parseType(); !ok {
		return ast.TypeName{}, false
	}
	if p.at(token.Ident) { // named value
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close mapping"); !ok {
		return ast.TypeName{}, false
	}
	return p.parseArraySuffix(kw)
}

func (p *Parser) parseFunctionType() (ast.TypeName, bool) {
	kw := p.advance()
	if _, ok := p.parseParameterList(false); !ok {
		return ast.TypeName{}, false
	}
	for p.atOr(token.KwInternal, token.KwExternal, token.KwPure, token.KwView, token.KwPayable) {
		p.advance()
	}
	if p.at(token.KwReturns) {
		p.advance()
		if _, ok := p.parseParameterList(false); !ok {
			return ast.TypeName{}, false
		}
	}
	return p.parseArraySuffix(kw)
}

func storageOf(k token.Kind) ast.StorageLocation {
	switch k {
	case token.KwMemory:
		return ast.StorageMemory
	case token.KwStorage:
		return ast.StorageStorage
	case token.KwCalldata:
		return ast.StorageCalldata
	}
	return ast.StorageDefault
}

func visibilityOf(k token.Kind) ast.Visibility {
	switch k {
	case token.KwPublic:
		return ast.VisPublic
	case token.KwExternal:
		return ast.VisExternal
	case token.KwInternal:
		return ast.VisInternal
	case token.KwPrivate:
		return ast.VisPrivate
	}
	return ast.VisDefault
}

func mutabilityOf(k token.Kind) ast.Mutability {
	switch k {
	case token.KwPure:
		return ast.MutPure
	case token.KwView:
		return ast.MutView
	case token.KwPayable:
		return ast.MutPayable
	case token.KwConstant:
		return ast.MutConstant
	}
	return ast.MutNonPayable
}
