package parser

import (
	"natlint/internal/ast"
	"natlint/internal/diag"
	"natlint/internal/token"
)

// parseContract parses [abstract] contract|interface|library Name [is Bases] { parts }.
func (p *Parser) parseContract() (ast.Decl, bool) {
	first := p.advance()
	c := &ast.ContractDefinition{}

	kw := first
	if first.Kind == token.KwAbstract {
		var ok bool
		kw, ok = p.expect(token.KwContract, diag.SynUnexpectedToken, "expected 'contract' after 'abstract'")
		if !ok {
			return nil, false
		}
		c.Ty = ast.ContractAbstract
	}
	switch kw.Kind {
	case token.KwInterface:
		c.Ty = ast.ContractInterface
	case token.KwLibrary:
		c.Ty = ast.ContractLibrary
	}

	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	c.Name = name

	if p.at(token.KwIs) {
		p.advance()
		for {
			base, sp, ok := p.parsePath()
			if !ok {
				return nil, false
			}
			if p.at(token.LParen) {
				if _, ok := p.skipBalanced(); !ok {
					return nil, false
				}
				sp = p.spanFrom(sp)
			}
			c.Bases = append(c.Bases, ast.Base{Name: base, Span: sp})
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	// storage layout specifier: layout at <expr>
	if p.atContextual("layout") {
		for !p.atOr(token.LBrace, token.EOF) {
			if p.advance().Kind == token.Invalid {
				return nil, false
			}
		}
	}

	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' to open "+c.Ty.String()+" body"); !ok {
		return nil, false
	}
	for !p.atOr(token.RBrace, token.EOF) {
		part, ok := p.parseContractPart()
		if !ok {
			return nil, false
		}
		if part != nil {
			c.Parts = append(c.Parts, part)
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close "+c.Ty.String()+" body"); !ok {
		return nil, false
	}
	c.Span = p.spanFrom(first.Span)
	return c, true
}

// parseContractPart dispatches on the first token of a contract member.
// using-directives and stray ';' yield (nil, true).
func (p *Parser) parseContractPart() (ast.Decl, bool) {
	switch p.lx.Peek().Kind {
	case token.KwFunction, token.KwConstructor, token.KwModifier, token.KwFallback, token.KwReceive:
		return p.parseFunction()
	case token.KwStruct:
		return p.parseStruct()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwEvent:
		return p.parseEvent()
	case token.KwType:
		return p.parseTypeDefinition()
	case token.KwUsing:
		return nil, p.skipStatement()
	case token.Semicolon:
		p.advance()
		return nil, true
	case token.Ident, token.KwMapping:
		return p.parseErrorOrVariable()
	default:
		p.err(diag.SynUnexpectedMember, "unexpected "+describe(p.lx.Peek())+" in contract body")
		return nil, false
	}
}
