package parser

import (
	"natlint/internal/ast"
	"natlint/internal/diag"
	"natlint/internal/source"
	"natlint/internal/token"
)

// parseStruct parses struct Name { Type name; ... }.
func (p *Parser) parseStruct() (ast.Decl, bool) {
	kw := p.advance()
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	s := &ast.StructDefinition{Name: name}
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' to open struct body"); !ok {
		return nil, false
	}
	for !p.atOr(token.RBrace, token.EOF) {
		start := p.lx.Peek().Span
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		field := ast.VariableDeclaration{Type: typ}
		if p.lx.Peek().IsStorageLocation() {
			field.Storage = storageOf(p.advance().Kind)
		}
		if field.Name, ok = p.parseIdent(); !ok {
			return nil, false
		}
		field.Span = p.spanFrom(start)
		if !p.expectSemicolon() {
			return nil, false
		}
		s.Fields = append(s.Fields, field)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close struct body"); !ok {
		return nil, false
	}
	s.Span = p.spanFrom(kw.Span)
	return s, true
}

// parseEnum parses enum Name { A, B, C }.
func (p *Parser) parseEnum() (ast.Decl, bool) {
	kw := p.advance()
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	e := &ast.EnumDefinition{Name: name}
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' to open enum body"); !ok {
		return nil, false
	}
	for !p.at(token.RBrace) {
		if !p.at(token.Ident) {
			p.err(diag.SynEnumExpectVariant, "expected enum variant, got "+describe(p.lx.Peek()))
			return nil, false
		}
		tok := p.advance()
		e.Values = append(e.Values, &ast.Ident{Name: tok.Text, Span: tok.Span})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close enum body"); !ok {
		return nil, false
	}
	e.Span = p.spanFrom(kw.Span)
	return e, true
}

// parseEvent parses event Name(params) [anonymous];
func (p *Parser) parseEvent() (ast.Decl, bool) {
	kw := p.advance()
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	params, indexed, ok := p.parseParameters(true)
	if !ok {
		return nil, false
	}
	ev := &ast.EventDefinition{Name: name}
	for i, prm := range params {
		ev.Fields = append(ev.Fields, ast.EventParameter{
			Span: prm.Span, Type: prm.Type, Indexed: indexed[i], Name: prm.Name,
		})
	}
	if p.at(token.KwAnonymous) {
		p.advance()
		ev.Anonymous = true
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	ev.Span = p.spanFrom(kw.Span)
	return ev, true
}

// parseTypeDefinition parses type Name is Underlying;
func (p *Parser) parseTypeDefinition() (ast.Decl, bool) {
	kw := p.advance()
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwIs, diag.SynTypeExpectIs, "expected 'is' in type definition"); !ok {
		return nil, false
	}
	under, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return &ast.TypeDefinition{Span: p.spanFrom(kw.Span), Name: name, Underlying: under}, true
}

// parseErrorOrVariable handles members starting with an identifier:
// 'error' Name(...) is an error definition, anything else a variable.
func (p *Parser) parseErrorOrVariable() (ast.Decl, bool) {
	if p.at(token.KwMapping) {
		typ, ok := p.parseMapping()
		if !ok {
			return nil, false
		}
		return p.parseVariableRest(typ)
	}

	first := p.advance()
	if first.Text == "error" && p.at(token.Ident) {
		return p.parseErrorRest(first)
	}
	typ, ok := p.parseTypeAfter(first)
	if !ok {
		return nil, false
	}
	return p.parseVariableRest(typ)
}

func (p *Parser) parseErrorRest(kw token.Token) (ast.Decl, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	params, ok := p.parseParameterList(false)
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	e := &ast.ErrorDefinition{Span: p.spanFrom(kw.Span), Name: name}
	for _, prm := range params {
		e.Fields = append(e.Fields, ast.ErrorParameter{Span: prm.Span, Type: prm.Type, Name: prm.Name})
	}
	return e, true
}

// parseVariableRest parses the attributes, name and optional initializer
// of a state variable whose type has been parsed.
func (p *Parser) parseVariableRest(typ ast.TypeName) (ast.Decl, bool) {
	v := &ast.VariableDefinition{Type: typ}
	for {
		tok := p.lx.Peek()
		switch {
		case tok.IsVisibility():
			p.advance()
			v.Attrs = append(v.Attrs, ast.VariableAttribute{Kind: ast.VarVisibility, Span: tok.Span, Visibility: visibilityOf(tok.Kind)})
			continue
		case tok.Kind == token.KwConstant:
			p.advance()
			v.Attrs = append(v.Attrs, ast.VariableAttribute{Kind: ast.VarConstant, Span: tok.Span})
			continue
		case tok.Kind == token.KwImmutable:
			p.advance()
			v.Attrs = append(v.Attrs, ast.VariableAttribute{Kind: ast.VarImmutable, Span: tok.Span})
			continue
		case tok.Kind == token.KwOverride:
			bases, sp, ok := p.parseOverride()
			if !ok {
				return nil, false
			}
			v.Attrs = append(v.Attrs, ast.VariableAttribute{Kind: ast.VarOverride, Span: sp, Overrides: bases})
			continue
		case tok.Kind == token.Ident && tok.Text == "transient":
			p.advance()
			if p.atOr(token.Assign, token.Semicolon) {
				// a variable named transient
				v.Name = &ast.Ident{Name: tok.Text, Span: tok.Span}
				break
			}
			v.Attrs = append(v.Attrs, ast.VariableAttribute{Kind: ast.VarTransient, Span: tok.Span})
			continue
		}
		break
	}

	if v.Name == nil {
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		v.Name = name
	}
	return p.finishVariable(v, typ.Span)
}

// finishVariable parses the optional initializer and the closing ';' of a
// variable whose name has been parsed.
func (p *Parser) finishVariable(v *ast.VariableDefinition, start source.Span) (ast.Decl, bool) {
	if p.at(token.Assign) {
		p.advance()
		initSpan, ok := p.skipUntilSemicolon()
		if !ok {
			return nil, false
		}
		v.Initializer = &initSpan
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	v.Span = p.spanFrom(start)
	return v, true
}
