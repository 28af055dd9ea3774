// Package token defines lexical token kinds and trivia for Solidity sources.
// Invariants:
//   - Token.Text is a slice of the original source.
//   - Token.Span matches Text exactly.
//   - Comments never appear in the main token stream; they are leading
//     Trivia of the next significant token. Doc comments (/// and /** */)
//     carry their own TriviaKind so NatSpec extraction can tell them apart.
//   - Only the words the declaration parser dispatches on are keywords.
package token
