package token

import (
	"natlint/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a number or string literal.
func (t Token) IsLiteral() bool {
	return t.Kind == NumberLit || t.Kind == StringLit
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwPragma && t.Kind <= KwAnonymous
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= RBracket
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsVisibility reports whether the token is one of the four visibility keywords.
func (t Token) IsVisibility() bool {
	switch t.Kind {
	case KwPublic, KwExternal, KwInternal, KwPrivate:
		return true
	default:
		return false
	}
}

// IsStorageLocation reports whether the token is memory, storage or calldata.
func (t Token) IsStorageLocation() bool {
	switch t.Kind {
	case KwMemory, KwStorage, KwCalldata:
		return true
	default:
		return false
	}
}
