package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"natlint/internal/driver"
	"natlint/internal/lint"
)

type palette struct {
	file, rule, pos, msg, desc, gutter, caret, err, ok *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		file:   mk(color.Bold, color.Underline),
		rule:   mk(color.FgYellow, color.Bold),
		pos:    mk(color.FgCyan),
		msg:    mk(color.Bold),
		desc:   mk(color.Faint),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
		err:    mk(color.FgRed, color.Bold),
		ok:     mk(color.FgGreen, color.Bold),
	}
}

// Pretty prints the findings grouped per file, each with a source excerpt,
// then the file errors and an optional summary:
//
//	a/Vault.sol
//	  [MissingNotice] 8:5: Missing a @notice comment
//	   8 |     function deposit(uint256 amount) external {}
//	     |     ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
func Pretty(w io.Writer, res *driver.Result, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	var b strings.Builder

	current := ""
	for _, f := range res.Findings {
		path := findingPath(res.FileSet, f, opts.PathMode)
		if path != current {
			if current != "" {
				b.WriteByte('\n')
			}
			b.WriteString(p.file.Sprint(path))
			b.WriteByte('\n')
			current = path
		}
		fmt.Fprintf(&b, "  %s %s: %s\n",
			p.rule.Sprintf("[%s]", f.Rule),
			p.pos.Sprintf("%d:%d", f.Start.Line, f.Start.Col),
			p.msg.Sprint(f.Message))
		if opts.ShowDescription && f.Description != "" {
			fmt.Fprintf(&b, "  %s\n", p.desc.Sprint(f.Description))
		}
		if res.FileSet != nil && int(f.File) < res.FileSet.Len() {
			writeExcerpt(&b, p, buildExcerpt(res.FileSet.Get(f.File), f.Start, f.End, opts.Context))
		}
	}

	for _, fe := range res.Errors {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		writeFileError(&b, p, fe)
	}

	if opts.Summary {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		writeSummary(&b, p, res)
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write report")
}

func writeExcerpt(b *strings.Builder, p palette, lines []excerptLine) {
	width := gutterWidth(lines)
	for _, l := range lines {
		fmt.Fprintf(b, "  %s %s\n", p.gutter.Sprintf("%*d |", width, l.num), l.text)
		if l.to > 0 {
			fmt.Fprintf(b, "  %s %s%s\n",
				p.gutter.Sprintf("%*s |", width, ""),
				strings.Repeat(" ", l.from),
				p.caret.Sprint(strings.Repeat("^", l.to-l.from)))
		}
	}
}

func writeFileError(b *strings.Builder, p palette, fe driver.FileError) {
	var failure *lint.ParseFailure
	if !errors.As(fe.Err, &failure) {
		fmt.Fprintf(b, "%s %s: %v\n", p.err.Sprint("error:"), p.file.Sprint(fe.Path), fe.Err)
		return
	}
	fmt.Fprintf(b, "%s %s: failed to parse\n", p.err.Sprint("error:"), p.file.Sprint(fe.Path))
	for _, d := range failure.Diagnostics {
		fmt.Fprintf(b, "  %s %s\n", p.rule.Sprintf("[%s]", d.Code.ID()), d.Message)
		for _, n := range d.Notes {
			fmt.Fprintf(b, "    note: %s\n", n.Msg)
		}
	}
}

func writeSummary(b *strings.Builder, p palette, res *driver.Result) {
	if len(res.Findings) == 0 {
		b.WriteString(p.ok.Sprint("No natspec violations found!"))
		b.WriteByte('\n')
	} else {
		fmt.Fprintf(b, "Found %s in %d files.\n",
			p.err.Sprint(plural(len(res.Findings), "natspec violation")), len(res.Files))
	}
	if n := len(res.Errors); n > 0 {
		fmt.Fprintf(b, "Failed to process %s due to errors.\n", plural(n, "file"))
	}
	if res.Suppressed > 0 {
		fmt.Fprintf(b, "%s suppressed by directives.\n", plural(res.Suppressed, "violation"))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
