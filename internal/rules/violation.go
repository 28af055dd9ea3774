package rules

import (
	"fmt"

	"natlint/internal/ast"
	"natlint/internal/natspec"
	"natlint/internal/source"
)

// ErrorKind enumerates the ways a comment block can violate a rule.
type ErrorKind uint8

const (
	MissingComment ErrorKind = iota
	TooManyComments
	CommentNotAllowed
	MissingCommentFor
	OnlyInheritdoc
	ParseError
)

var errorKindNames = [...]string{
	MissingComment:    "MissingComment",
	TooManyComments:   "TooManyComments",
	CommentNotAllowed: "CommentNotAllowed",
	MissingCommentFor: "MissingCommentFor",
	OnlyInheritdoc:    "OnlyInheritdoc",
	ParseError:        "ParseError",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// ViolationError describes what is wrong. Tag is set for every kind except
// OnlyInheritdoc and ParseError; Name only for MissingCommentFor; Msg only
// for ParseError.
type ViolationError struct {
	Kind ErrorKind
	Tag  natspec.CommentTag
	Name string
	Msg  string
}

func (e ViolationError) Error() string {
	switch e.Kind {
	case MissingComment:
		return fmt.Sprintf("Missing a %s comment", e.Tag)
	case TooManyComments:
		return fmt.Sprintf("Too many %s comments", e.Tag)
	case CommentNotAllowed:
		return fmt.Sprintf("%s comments are not allowed on this construct", e.Tag)
	case MissingCommentFor:
		return fmt.Sprintf("Missing a %s comment for `%s`", e.Tag, e.Name)
	case OnlyInheritdoc:
		return "Inheritdoc comment must be the only comment"
	case ParseError:
		return "Error while parsing: " + e.Msg
	}
	return e.Kind.String()
}

func missingComment(tag natspec.CommentTag) ViolationError {
	return ViolationError{Kind: MissingComment, Tag: tag}
}

func tooManyComments(tag natspec.CommentTag) ViolationError {
	return ViolationError{Kind: TooManyComments, Tag: tag}
}

func commentNotAllowed(tag natspec.CommentTag) ViolationError {
	return ViolationError{Kind: CommentNotAllowed, Tag: tag}
}

func missingCommentFor(tag natspec.CommentTag, name string) ViolationError {
	return ViolationError{Kind: MissingCommentFor, Tag: tag, Name: name}
}

func parseError(msg string) ViolationError {
	return ViolationError{Kind: ParseError, Msg: msg}
}

// Violation is one rule failure.
type Violation struct {
	RuleName        string
	RuleDescription string
	// Kind is the target kind of the rule.
	Kind ast.DeclKind
	Err  ViolationError
	Loc  source.Span
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.RuleName, v.Err.Error())
}
