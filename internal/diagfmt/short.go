package diagfmt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"natlint/internal/driver"
)

// Short prints one line per finding, in the form understood by editors
// and CI annotators:
//
//	path:line:col: [Rule] message
//
// File errors follow as "path: error: ...".
func Short(w io.Writer, res *driver.Result, mode PathMode) error {
	bw := bufio.NewWriter(w)
	for _, f := range res.Findings {
		fmt.Fprintf(bw, "%s:%d:%d: [%s] %s\n",
			findingPath(res.FileSet, f, mode), f.Start.Line, f.Start.Col, f.Rule, f.Message)
	}
	for _, fe := range res.Errors {
		fmt.Fprintf(bw, "%s: error: %v\n", fe.Path, fe.Err)
	}
	return errors.Wrap(bw.Flush(), "failed to write report")
}
