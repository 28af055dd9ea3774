package rules

import (
	"natlint/internal/doctree"
	"natlint/internal/natspec"
)

type polarity uint8

const (
	required  polarity = iota // at least one entry
	forbidden                 // no entry
	single                    // at most one entry
)

// tagRule checks how often a single tag occurs on a declaration.
type tagRule struct {
	meta
	tag      natspec.CommentTag
	polarity polarity
}

func (r tagRule) Check(_, item *doctree.Item) *Violation {
	if item.Kind() != r.target {
		return nil
	}
	n := len(item.Comments.IncludeTag(r.tag))
	switch {
	case r.polarity == required && n == 0:
		return r.violation(missingComment(r.tag), item.Loc())
	case r.polarity == forbidden && n > 0:
		return r.violation(commentNotAllowed(r.tag), item.Loc())
	case r.polarity == single && n > 1:
		return r.violation(tooManyComments(r.tag), item.Loc())
	}
	return nil
}
