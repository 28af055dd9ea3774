// Package natspec parses NatSpec documentation comments into tagged entries.
package natspec

import "strings"

// TagKind identifies a NatSpec tag.
type TagKind uint8

const (
	KindTitle TagKind = iota
	KindAuthor
	KindNotice
	KindDev
	KindParam
	KindReturn
	KindInheritdoc
	KindCustom
)

var tagKindNames = [...]string{
	KindTitle:      "title",
	KindAuthor:     "author",
	KindNotice:     "notice",
	KindDev:        "dev",
	KindParam:      "param",
	KindReturn:     "return",
	KindInheritdoc: "inheritdoc",
	KindCustom:     "custom",
}

func (k TagKind) String() string {
	if int(k) < len(tagKindNames) {
		return tagKindNames[k]
	}
	return "unknown"
}

// CommentTag is a tag as matched by rules. Custom is the name after
// "@custom:" and is empty for the builtin tags.
type CommentTag struct {
	Kind   TagKind
	Custom string
}

var (
	Title      = CommentTag{Kind: KindTitle}
	Author     = CommentTag{Kind: KindAuthor}
	Notice     = CommentTag{Kind: KindNotice}
	Dev        = CommentTag{Kind: KindDev}
	Param      = CommentTag{Kind: KindParam}
	Return     = CommentTag{Kind: KindReturn}
	Inheritdoc = CommentTag{Kind: KindInheritdoc}
)

// CustomTag returns the tag for @custom:name.
func CustomTag(name string) CommentTag {
	return CommentTag{Kind: KindCustom, Custom: name}
}

// String renders the tag the way it is written in source, e.g. "@notice"
// or "@custom:variant".
func (t CommentTag) String() string {
	if t.Kind == KindCustom {
		return "@custom:" + t.Custom
	}
	return "@" + t.Kind.String()
}

// lookupTag maps a written tag such as "@param" to its CommentTag.
func lookupTag(word string) (CommentTag, bool) {
	if name, ok := strings.CutPrefix(word, "@custom:"); ok {
		return CustomTag(name), true
	}
	for k := KindTitle; k < KindCustom; k++ {
		if word == "@"+k.String() {
			return CommentTag{Kind: k}, true
		}
	}
	return CommentTag{}, false
}
