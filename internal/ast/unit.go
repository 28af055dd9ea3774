package ast

import "natlint/internal/source"

// CommentKind classifies a raw comment.
type CommentKind uint8

const (
	CommentLine     CommentKind = iota // // ...
	CommentBlock                       // /* ... */
	CommentDocLine                     // /// ...
	CommentDocBlock                    // /** ... */
)

// IsDoc reports whether the comment is a NatSpec doc comment.
func (k CommentKind) IsDoc() bool {
	return k == CommentDocLine || k == CommentDocBlock
}

// Comment is one raw comment with its markers still in Text.
type Comment struct {
	Kind CommentKind
	Span source.Span
	Text string
}

// SourceUnit is a parsed file. Pragmas, imports and using-directives are
// consumed by the parser and not represented.
type SourceUnit struct {
	File  source.FileID
	Span  source.Span
	Items []Decl
}
