package natspec

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

var (
	ErrMissingTag           = errors.New("missing natspec tag")
	ErrMissingDescription   = errors.New("missing natspec description")
	ErrMissingParameterName = errors.New("missing parameter name")
	ErrMissingParameterDesc = errors.New("missing parameter description")
	ErrMissingReturnVarName = errors.New("missing return variable name")
	ErrMissingReturnVarDesc = errors.New("missing return variable description")
	ErrMissingCustomTag     = errors.New("missing custom tag")
)

// UnknownTagError is returned for a line starting with an unrecognised tag.
type UnknownTagError struct {
	Name string
}

func (e *UnknownTagError) Error() string {
	return "unknown tag: " + e.Name
}

// Entry is one parsed tag.
//
// Name holds the parameter or return variable name for @param and @return
// and the base contract for @inheritdoc. Text holds the description; it is
// empty for @inheritdoc.
type Entry struct {
	Tag  CommentTag
	Name string
	Text string
}

// LeadingWord is the word a tag documents: the name for @param and
// @return, otherwise the first word of the description.
func (e Entry) LeadingWord() string {
	if e.Name != "" {
		return e.Name
	}
	word, _ := splitWord(e.Text)
	return word
}

func (e Entry) String() string {
	switch e.Tag.Kind {
	case KindParam, KindReturn:
		return fmt.Sprintf("%s %s %s", e.Tag, e.Name, e.Text)
	case KindInheritdoc:
		return fmt.Sprintf("%s %s", e.Tag, e.Name)
	default:
		return fmt.Sprintf("%s %s", e.Tag, e.Text)
	}
}

// ParseEntry parses one comment line with its comment markers already
// stripped. The tag is separated from its payload by the first space.
func ParseEntry(line string) (Entry, error) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "@") {
		return Entry{}, ErrMissingTag
	}
	word, rest, _ := strings.Cut(s, " ")
	rest = strings.TrimSpace(rest)

	tag, ok := lookupTag(word)
	if !ok {
		return Entry{}, &UnknownTagError{Name: word}
	}

	switch tag.Kind {
	case KindParam:
		return parseNamed(tag, rest, ErrMissingParameterName, ErrMissingParameterDesc)
	case KindReturn:
		return parseNamed(tag, rest, ErrMissingReturnVarName, ErrMissingReturnVarDesc)
	case KindCustom:
		if tag.Custom == "" {
			return Entry{}, ErrMissingCustomTag
		}
	}
	if rest == "" {
		return Entry{}, ErrMissingDescription
	}
	if tag.Kind == KindInheritdoc {
		return Entry{Tag: tag, Name: rest}, nil
	}
	return Entry{Tag: tag, Text: rest}, nil
}

func parseNamed(tag CommentTag, rest string, errName, errDesc error) (Entry, error) {
	if rest == "" {
		return Entry{}, errName
	}
	name, desc := splitWord(rest)
	if desc == "" {
		return Entry{}, errDesc
	}
	return Entry{Tag: tag, Name: name, Text: desc}, nil
}

// splitWord splits s at its first whitespace run.
func splitWord(s string) (word, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
