package natspec

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Dropped is a comment line the tag parser rejected.
type Dropped struct {
	Line string
	Err  error
}

// Comments is the ordered set of entries documenting one declaration.
type Comments struct {
	entries []Entry
	dropped []Dropped
}

// NewComments wraps entries that are already parsed.
func NewComments(entries ...Entry) Comments {
	return Comments{entries: entries}
}

// ParseComments parses the lines of one comment block.
//
// If the first line carries no tag it is taken as the notice. Any later
// untagged line continues the previous entry, unless that line was dropped.
func ParseComments(lines []string) Comments {
	var c Comments
	lastDropped := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		entry, err := ParseEntry(line)
		switch {
		case err == nil:
			c.entries = append(c.entries, entry)
			lastDropped = false
		case errors.Is(err, ErrMissingTag) && len(c.entries) == 0 && len(c.dropped) == 0:
			c.entries = append(c.entries, Entry{Tag: Notice, Text: line})
			lastDropped = false
		case errors.Is(err, ErrMissingTag) && len(c.entries) > 0 && !lastDropped:
			last := &c.entries[len(c.entries)-1]
			if last.Text == "" {
				last.Text = line
			} else {
				last.Text += " " + line
			}
		default:
			c.dropped = append(c.dropped, Dropped{Line: line, Err: err})
			lastDropped = true
		}
	}
	return c
}

// IncludeTag returns the entries carrying tag, in source order.
func (c Comments) IncludeTag(tag CommentTag) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}

// FindInheritdocBase returns the base named by the first @inheritdoc entry.
func (c Comments) FindInheritdocBase() (string, bool) {
	for _, e := range c.entries {
		if e.Tag.Kind == KindInheritdoc {
			return e.Name, true
		}
	}
	return "", false
}

func (c Comments) Len() int { return len(c.entries) }

// Entries returns the parsed entries. The slice must not be modified.
func (c Comments) Entries() []Entry { return c.entries }

// Dropped returns the rejected lines.
func (c Comments) Dropped() []Dropped { return c.dropped }
