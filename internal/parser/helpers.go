package parser

import (
	"natlint/internal/ast"
	"natlint/internal/diag"
	"natlint/internal/source"
	"natlint/internal/token"
)

// advance consumes the next token, records its comments and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	for _, tv := range tok.Leading {
		if c, ok := commentFromTrivia(tv); ok {
			p.comments = append(p.comments, c)
		}
	}
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	if tok.Kind == token.Invalid {
		p.failed = true
	}
	return tok
}

func commentFromTrivia(tv token.Trivia) (ast.Comment, bool) {
	var kind ast.CommentKind
	switch tv.Kind {
	case token.TriviaLineComment:
		kind = ast.CommentLine
	case token.TriviaBlockComment:
		kind = ast.CommentBlock
	case token.TriviaDocLine:
		kind = ast.CommentDocLine
	case token.TriviaDocBlock:
		kind = ast.CommentDocBlock
	default:
		return ast.Comment{}, false
	}
	return ast.Comment{Kind: kind, Span: tv.Span, Text: tv.Text}, true
}

// getDiagnosticSpan points at the next token, or just past the last
// consumed one when the next token is EOF.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// spanFrom covers start up to the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

// expect consumes a token of kind k or reports code with msg.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, msg+", got "+describe(p.lx.Peek()))
	return token.Token{Kind: token.Invalid, Span: p.getDiagnosticSpan()}, false
}

func (p *Parser) parseIdent() (*ast.Ident, bool) {
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier")
	if !ok {
		return nil, false
	}
	return &ast.Ident{Name: tok.Text, Span: tok.Span}, true
}

// parsePath parses Ident {'.' Ident} and returns the joined text.
func (p *Parser) parsePath() (string, source.Span, bool) {
	first, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier")
	if !ok {
		return "", first.Span, false
	}
	return p.parsePathAfter(first)
}

func (p *Parser) parsePathAfter(first token.Token) (string, source.Span, bool) {
	text := first.Text
	for p.at(token.Dot) {
		p.advance()
		seg, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after '.'")
		if !ok {
			return "", first.Span, false
		}
		text += "." + seg.Text
	}
	return text, p.spanFrom(first.Span), true
}

// err reports an error at the current position and marks the parse failed.
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if sev == diag.SevError {
		p.failed = true
	}
	diag.NewReportBuilder(p.reporter, sev, code, sp, msg).Emit()
}

var closerFor = map[token.Kind]token.Kind{
	token.LParen:   token.RParen,
	token.LBrace:   token.RBrace,
	token.LBracket: token.RBracket,
}

// skipBalanced consumes a bracketed group starting at the next token, which
// must be an opener. It returns the span of the whole group.
func (p *Parser) skipBalanced() (source.Span, bool) {
	open := p.advance()
	stack := []token.Kind{closerFor[open.Kind]}
	for len(stack) > 0 {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF:
			p.report(diag.SynUnclosedDelimiter, diag.SevError, open.Span, "unclosed "+open.Kind.String())
			return open.Span, false
		case tok.Kind == token.Invalid:
			p.advance()
			return open.Span, false
		}
		p.advance()
		if closer, ok := closerFor[tok.Kind]; ok {
			stack = append(stack, closer)
			continue
		}
		switch tok.Kind {
		case token.RParen, token.RBrace, token.RBracket:
			if stack[len(stack)-1] != tok.Kind {
				p.failed = true
				diag.ReportError(p.reporter, diag.SynUnclosedDelimiter, tok.Span, "mismatched "+tok.Kind.String()).
					WithNote(open.Span, "group opened here").
					Emit()
				return open.Span, false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return p.spanFrom(open.Span), true
}

// skipUntilSemicolon consumes tokens up to a ';' at nesting depth zero
// without consuming it. It returns the span of the skipped tokens.
func (p *Parser) skipUntilSemicolon() (source.Span, bool) {
	start := p.lx.Peek().Span
	for !p.at(token.Semicolon) {
		switch {
		case p.at(token.EOF):
			p.err(diag.SynExpectSemicolon, "expected ';'")
			return start, false
		case p.atOr(token.LParen, token.LBrace, token.LBracket):
			if _, ok := p.skipBalanced(); !ok {
				return start, false
			}
		case p.atOr(token.RParen, token.RBrace, token.RBracket):
			p.err(diag.SynUnexpectedToken, "unexpected "+describe(p.lx.Peek()))
			return start, false
		default:
			if p.advance().Kind == token.Invalid {
				return start, false
			}
		}
	}
	return p.spanFrom(start), true
}

// skipStatement consumes pragma, import and using directives.
func (p *Parser) skipStatement() bool {
	p.advance()
	if _, ok := p.skipUntilSemicolon(); !ok {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) expectSemicolon() bool {
	_, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
	return ok
}
