package lexer

import (
	"natlint/internal/diag"
	"natlint/internal/token"
)

// collectLeadingTrivia gathers the trivia before the next significant token.
//   - runs of ' ', '\t', '\r', '\f' coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline
//   - "//" up to '\n' is TriviaLineComment, "///" is TriviaDocLine
//   - "/*" up to "*/" is TriviaBlockComment, "/**" is TriviaDocBlock
//
// "////" and "/**/" are ordinary comments, as in solc.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if isSpace(b) {
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' && lx.scanComment() {
			continue
		}

		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: lx.text(sp),
	})
}

// scanComment consumes one comment into hold. It rewinds and returns false
// when the '/' is a division operator.
func (lx *Lexer) scanComment() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		kind := token.TriviaLineComment
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 != '/' {
			kind = token.TriviaDocLine
		} else if !ok && lx.cursor.Peek() == '/' {
			kind = token.TriviaDocLine // "///" right before EOF
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(kind, start)
		return true

	case '*':
		lx.cursor.Bump()
		kind := token.TriviaBlockComment
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 != '/' {
			kind = token.TriviaDocBlock
		}
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.pushTrivia(kind, start)
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}
