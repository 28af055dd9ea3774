package diagfmt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"natlint/internal/source"
)

// excerptLine is one numbered source line, with the caret range to mark.
type excerptLine struct {
	num  uint32
	text string
	// from and to are display columns, 0-based and half-open. to == 0
	// means nothing is marked.
	from, to int
}

func buildExcerpt(file *source.File, start, end source.LineCol, context int8) []excerptLine {
	if context < 0 || start.Line == 0 {
		return nil
	}
	ctx := uint32(context) // #nosec G115 -- checked non-negative above
	first := start.Line - min(ctx, start.Line-1)
	last := start.Line + ctx

	var out []excerptLine
	for n := first; n <= last; n++ {
		if n > start.Line && int(n-1) > len(file.LineIdx) {
			break
		}
		text := strings.ReplaceAll(file.GetLine(n), "\t", "    ")
		line := excerptLine{num: n, text: text}
		if n == start.Line {
			raw := file.GetLine(n)
			line.from = displayWidth(raw, start.Col-1)
			if end.Line == start.Line && end.Col > start.Col {
				line.to = displayWidth(raw, end.Col-1)
			} else {
				line.to = runewidth.StringWidth(text)
			}
			if line.to <= line.from {
				line.to = line.from + 1
			}
		}
		out = append(out, line)
	}
	return out
}

// displayWidth is the terminal width of the first n bytes of line, with
// tabs expanded to four columns.
func displayWidth(line string, n uint32) int {
	if int(n) > len(line) {
		n = uint32(len(line)) // #nosec G115 -- bounded by n
	}
	prefix := strings.ReplaceAll(line[:n], "\t", "    ")
	return runewidth.StringWidth(prefix)
}

func gutterWidth(lines []excerptLine) int {
	if len(lines) == 0 {
		return 0
	}
	return len(fmt.Sprint(lines[len(lines)-1].num))
}
