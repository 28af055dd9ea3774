package token

import "natlint/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment  // // ...
	TriviaBlockComment // /* ... */
	TriviaDocLine      // /// ...
	TriviaDocBlock     // /** ... */
)

// IsComment reports whether the trivia carries comment text.
func (k TriviaKind) IsComment() bool {
	return k >= TriviaLineComment
}

// IsDoc reports whether the trivia is a NatSpec doc comment.
func (k TriviaKind) IsDoc() bool {
	return k == TriviaDocLine || k == TriviaDocBlock
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
