package doctree

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"natlint/internal/ast"
	"natlint/internal/natspec"
	"natlint/internal/source"
)

// Build pairs every declaration of unit with the doc comments written
// directly above it. comments must be in source order.
func Build(file *source.File, unit *ast.SourceUnit, comments []ast.Comment) ([]*Item, error) {
	b := &builder{file: file, comments: comments}
	if err := ast.Walk(b, unit); err != nil {
		return nil, errors.Wrapf(err, "building declaration tree of %s", file.Path)
	}
	return b.roots, nil
}

type builder struct {
	file     *source.File
	comments []ast.Comment
	roots    []*Item
	stack    []*Item // open contracts
}

func (b *builder) Visit(decl ast.Decl) (ast.Visitor, error) {
	if decl == nil {
		b.stack = b.stack[:len(b.stack)-1]
		return nil, nil
	}
	if k := decl.Kind(); int(k) >= ast.NumKinds {
		return nil, errors.Newf("unsupported declaration kind %d", k)
	}
	loc := decl.Loc()
	if int(loc.End) > len(b.file.Content) || loc.Start > loc.End {
		return nil, errors.Newf("declaration %q has invalid span %s", decl.DeclName(), loc)
	}

	item := &Item{
		Source:   decl,
		Comments: natspec.ParseComments(b.docLines(loc.Start)),
	}
	if n := len(b.stack); n > 0 {
		parent := b.stack[n-1]
		parent.Children = append(parent.Children, item)
	} else {
		b.roots = append(b.roots, item)
	}

	if decl.Kind() != ast.KindContract {
		return nil, nil
	}
	b.stack = append(b.stack, item)
	return b, nil
}

// docLines returns the doc comment lines attached to a declaration starting
// at offset start: the run of comments ending right before it, separated
// only by whitespace.
func (b *builder) docLines(start uint32) []string {
	i := sort.Search(len(b.comments), func(i int) bool {
		return b.comments[i].Span.End > start
	})

	var run []ast.Comment
	boundary := start
	for i--; i >= 0; i-- {
		c := b.comments[i]
		if strings.TrimSpace(string(b.file.Content[c.Span.End:boundary])) != "" {
			break
		}
		run = append(run, c)
		boundary = c.Span.Start
	}

	var lines []string
	for j := len(run) - 1; j >= 0; j-- {
		switch run[j].Kind {
		case ast.CommentDocLine:
			lines = append(lines, docLineText(run[j].Text))
		case ast.CommentDocBlock:
			lines = append(lines, docBlockLines(run[j].Text)...)
		}
	}
	return lines
}

func docLineText(text string) string {
	return strings.TrimSpace(strings.TrimPrefix(text, "///"))
}

func docBlockLines(text string) []string {
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
