// Package directive scans Solidity sources for natlint-disable-next-line
// comments.
//
//	// natlint-disable-next-line
//	uint x;            // every rule is suppressed on this line
//
//	// natlint-disable-next-line MissingNotice, MissingParam
//	function foo() {}  // only the listed rules are suppressed
package directive

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"fortio.org/safecast"

	"natlint/internal/source"
)

var disableRe = regexp.MustCompile(`//\s*natlint-disable-next-line(?:\s+([\w\s,]+))?`)

// Directive is one disable comment.
type Directive struct {
	// Line is the 1-based line the comment is on; it suppresses Line+1.
	Line uint32
	// Rules lists the suppressed rule names. Nil suppresses every rule.
	Rules []string
	Span  source.Span
}

// Target is the line whose findings are suppressed.
func (d Directive) Target() uint32 { return d.Line + 1 }

func (d Directive) Suppresses(rule string) bool {
	return d.Rules == nil || slices.Contains(d.Rules, rule)
}

// Set holds the directives of one file keyed by target line.
type Set struct {
	byTarget map[uint32]Directive
	ordered  []Directive
}

// Scan collects the directives of file. A later directive for the same
// target line replaces an earlier one.
func Scan(file *source.File) *Set {
	s := &Set{byTarget: make(map[uint32]Directive)}
	content := string(file.Content)
	var off uint32
	for i, line := range strings.Split(content, "\n") {
		if m := disableRe.FindStringSubmatchIndex(line); m != nil {
			d := Directive{
				Line: u32(i + 1),
				Span: source.Span{File: file.ID, Start: off + u32(m[0]), End: off + u32(m[1])},
			}
			if m[2] >= 0 {
				d.Rules = splitRules(line[m[2]:m[3]])
			}
			s.byTarget[d.Target()] = d
			s.ordered = append(s.ordered, d)
		}
		off += u32(len(line)) + 1
	}
	return s
}

func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}

// splitRules splits a rule list on commas and whitespace. An empty list
// means every rule.
func splitRules(list string) []string {
	rules := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
	if len(rules) == 0 {
		return nil
	}
	return rules
}

// Suppressed reports whether rule is disabled on the 1-based line.
func (s *Set) Suppressed(line uint32, rule string) bool {
	if s == nil {
		return false
	}
	d, ok := s.byTarget[line]
	return ok && d.Suppresses(rule)
}

// All returns the directives in source order.
func (s *Set) All() []Directive {
	if s == nil {
		return nil
	}
	return append([]Directive(nil), s.ordered...)
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ordered)
}

// Unknown returns the directives naming a rule not in known.
func (s *Set) Unknown(known []string) []Directive {
	var out []Directive
	for _, d := range s.All() {
		if slices.ContainsFunc(d.Rules, func(r string) bool { return !slices.Contains(known, r) }) {
			out = append(out, d)
		}
	}
	return out
}
