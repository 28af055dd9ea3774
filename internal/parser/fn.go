package parser

import (
	"cmp"
	"slices"

	"natlint/internal/ast"
	"natlint/internal/diag"
	"natlint/internal/source"
	"natlint/internal/token"
)

// parseFunction parses function, constructor, modifier, fallback and
// receive definitions. Bodies are skipped.
func (p *Parser) parseFunction() (ast.Decl, bool) {
	kw := p.advance()
	fn := &ast.FunctionDefinition{}
	legacy := false

	switch kw.Kind {
	case token.KwFunction:
		fn.Ty = ast.FuncFunction
		switch {
		case p.at(token.LParen):
			// pre-0.6 unnamed fallback, or a state variable of function type
			fn.Ty = ast.FuncFallback
			legacy = true
		case p.atOr(token.KwFallback, token.KwReceive):
			tok := p.advance()
			fn.Name = &ast.Ident{Name: tok.Text, Span: tok.Span}
		default:
			name, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			fn.Name = name
		}
	case token.KwConstructor:
		fn.Ty = ast.FuncConstructor
	case token.KwFallback:
		fn.Ty = ast.FuncFallback
	case token.KwReceive:
		fn.Ty = ast.FuncReceive
	case token.KwModifier:
		fn.Ty = ast.FuncModifier
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		fn.Name = name
	}

	if fn.Ty != ast.FuncModifier || p.at(token.LParen) {
		params, ok := p.parseParameterList(false)
		if !ok {
			return nil, false
		}
		fn.Params = params
	}

	// In the legacy form the leading attributes may still belong to a
	// function type: fn.Attributes[:ft.attrs] and everything up to ft.end.
	ft := functionType{open: legacy, end: p.spanFrom(kw.Span)}
	for {
		tok := p.lx.Peek()
		switch {
		case tok.IsVisibility():
			p.advance()
			vis := visibilityOf(tok.Kind)
			fn.Attributes = append(fn.Attributes, ast.FunctionAttribute{
				Kind: ast.AttrVisibility, Span: tok.Span, Visibility: vis,
			})
			ft.extend(p, kw, fn, vis == ast.VisInternal || vis == ast.VisExternal)
		case tok.Kind == token.KwPure, tok.Kind == token.KwView,
			tok.Kind == token.KwPayable, tok.Kind == token.KwConstant:
			p.advance()
			mut := mutabilityOf(tok.Kind)
			fn.Attributes = append(fn.Attributes, ast.FunctionAttribute{
				Kind: ast.AttrMutability, Span: tok.Span, Mutability: mut,
			})
			ft.extend(p, kw, fn, mut != ast.MutConstant)
		case tok.Kind == token.KwVirtual:
			p.advance()
			fn.Attributes = append(fn.Attributes, ast.FunctionAttribute{Kind: ast.AttrVirtual, Span: tok.Span})
			ft.extend(p, kw, fn, false)
		case tok.Kind == token.KwOverride:
			bases, sp, ok := p.parseOverride()
			if !ok {
				return nil, false
			}
			fn.Attributes = append(fn.Attributes, ast.FunctionAttribute{Kind: ast.AttrOverride, Span: sp, Overrides: bases})
			ft.extend(p, kw, fn, false)
		case legacy && tok.Kind == token.KwImmutable:
			p.advance()
			ft.extra = append(ft.extra, ast.VariableAttribute{Kind: ast.VarImmutable, Span: tok.Span})
			ft.open = false
		case legacy && tok.Kind == token.LBracket && len(fn.Attributes) == ft.attrs && len(ft.extra) == 0:
			if _, ok := p.skipBalanced(); !ok {
				return nil, false
			}
			ft.end = p.spanFrom(kw.Span)
			ft.open = false
		case tok.Kind == token.Ident:
			name, sp, ok := p.parsePath()
			if !ok {
				return nil, false
			}
			if legacy && sp == tok.Span && p.atOr(token.Semicolon, token.Assign) {
				return p.finishFunctionVariable(kw, fn, ft, &ast.Ident{Name: name, Span: sp})
			}
			if p.at(token.LParen) {
				if _, ok := p.skipBalanced(); !ok {
					return nil, false
				}
				sp = p.spanFrom(sp)
			}
			fn.Attributes = append(fn.Attributes, ast.FunctionAttribute{Kind: ast.AttrModifier, Span: sp, Name: name})
			ft.extend(p, kw, fn, false)
		case tok.Kind == token.KwReturns:
			p.advance()
			rets, ok := p.parseParameterList(false)
			if !ok {
				return nil, false
			}
			fn.Returns = rets
			if ft.open {
				ft.attrs = len(fn.Attributes)
				ft.end = p.spanFrom(kw.Span)
			}
			ft.open = false
		case tok.Kind == token.Semicolon:
			p.advance()
			fn.Span = p.spanFrom(kw.Span)
			return fn, true
		case tok.Kind == token.LBrace:
			body, ok := p.skipBalanced()
			if !ok {
				return nil, false
			}
			fn.Body = &body
			fn.Span = p.spanFrom(kw.Span)
			return fn, true
		default:
			p.err(diag.SynUnexpectedToken, "expected function body or ';', got "+describe(tok))
			return nil, false
		}
	}
}

// functionType tracks how much of a legacy 'function (' member could be
// the type of a state variable.
type functionType struct {
	open  bool
	attrs int
	end   source.Span
	extra []ast.VariableAttribute
}

// extend records the attribute just appended to fn. Type attributes only
// extend the type while no other attribute has been seen.
func (ft *functionType) extend(p *Parser, kw token.Token, fn *ast.FunctionDefinition, isType bool) {
	if ft.open && isType {
		ft.attrs = len(fn.Attributes)
		ft.end = p.spanFrom(kw.Span)
		return
	}
	ft.open = false
}

// finishFunctionVariable completes a legacy 'function (' member whose
// trailing name shows it declares a state variable of function type.
func (p *Parser) finishFunctionVariable(kw token.Token, fn *ast.FunctionDefinition, ft functionType, name *ast.Ident) (ast.Decl, bool) {
	v := &ast.VariableDefinition{
		Type: ast.TypeName{Text: p.file.Text(ft.end), Span: ft.end},
		Name: name,
	}
	for _, a := range fn.Attributes[ft.attrs:] {
		switch {
		case a.Kind == ast.AttrVisibility:
			v.Attrs = append(v.Attrs, ast.VariableAttribute{Kind: ast.VarVisibility, Span: a.Span, Visibility: a.Visibility})
		case a.Kind == ast.AttrMutability && a.Mutability == ast.MutConstant:
			v.Attrs = append(v.Attrs, ast.VariableAttribute{Kind: ast.VarConstant, Span: a.Span})
		case a.Kind == ast.AttrOverride:
			v.Attrs = append(v.Attrs, ast.VariableAttribute{Kind: ast.VarOverride, Span: a.Span, Overrides: a.Overrides})
		case a.Kind == ast.AttrModifier && a.Name == "transient":
			v.Attrs = append(v.Attrs, ast.VariableAttribute{Kind: ast.VarTransient, Span: a.Span})
		default:
			p.report(diag.SynUnexpectedToken, diag.SevError, a.Span, "unexpected "+p.file.Text(a.Span)+" in variable declaration")
			return nil, false
		}
	}
	v.Attrs = append(v.Attrs, ft.extra...)
	slices.SortFunc(v.Attrs, func(a, b ast.VariableAttribute) int { return cmp.Compare(a.Span.Start, b.Span.Start) })
	return p.finishVariable(v, kw.Span)
}

// parseOverride parses 'override' ['(' Path {',' Path} ')'].
func (p *Parser) parseOverride() ([]string, source.Span, bool) {
	kw := p.advance()
	if !p.at(token.LParen) {
		return nil, kw.Span, true
	}
	p.advance()
	var bases []string
	for !p.at(token.RParen) {
		name, _, ok := p.parsePath()
		if !ok {
			return nil, kw.Span, false
		}
		bases = append(bases, name)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after override list"); !ok {
		return nil, kw.Span, false
	}
	return bases, p.spanFrom(kw.Span), true
}

// parseParameterList parses '(' [param {',' param}] ')'. Event parameters
// may be marked indexed.
func (p *Parser) parseParameterList(allowIndexed bool) ([]ast.Parameter, bool) {
	params, _, ok := p.parseParameters(allowIndexed)
	return params, ok
}

func (p *Parser) parseParameters(allowIndexed bool) (params []ast.Parameter, indexed []bool, ok bool) {
	if _, ok := p.expect(token.LParen, diag.SynExpectLParen, "expected '('"); !ok {
		return nil, nil, false
	}
	for !p.at(token.RParen) {
		start := p.lx.Peek().Span
		typ, ok := p.parseType()
		if !ok {
			return nil, nil, false
		}
		param := ast.Parameter{Type: typ}
		if p.lx.Peek().IsStorageLocation() {
			param.Storage = storageOf(p.advance().Kind)
		}
		isIndexed := false
		if allowIndexed && p.at(token.KwIndexed) {
			p.advance()
			isIndexed = true
		}
		if p.at(token.Ident) {
			tok := p.advance()
			param.Name = &ast.Ident{Name: tok.Text, Span: tok.Span}
		}
		param.Span = p.spanFrom(start)
		params = append(params, param)
		indexed = append(indexed, isIndexed)

		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after parameters"); !ok {
		return nil, nil, false
	}
	return params, indexed, true
}
