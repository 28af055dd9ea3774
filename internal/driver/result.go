package driver

import (
	"cmp"
	"slices"

	"natlint/internal/ast"
	"natlint/internal/source"
)

// Finding is a violation resolved to a position in its file.
type Finding struct {
	Path        string
	File        source.FileID
	Kind        ast.DeclKind
	Rule        string
	Description string
	Message     string
	Span        source.Span
	Start       source.LineCol
	End         source.LineCol
}

// FileError is a file that could not be read or parsed.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e FileError) Unwrap() error { return e.Err }

// Result is the outcome of a run.
type Result struct {
	FileSet *source.FileSet
	// Files are the linted paths in display form.
	Files    []string
	Findings []Finding
	Errors   []FileError
	// Suppressed counts findings hidden by disable directives.
	Suppressed int
	CacheHits  int
}

// Failed reports whether the run should exit with a non-zero status.
func (r *Result) Failed() bool {
	return len(r.Findings) > 0 || len(r.Errors) > 0
}

func sortFindings(findings []Finding) {
	slices.SortStableFunc(findings, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Start.Line, b.Start.Line),
			cmp.Compare(a.Rule, b.Rule),
			cmp.Compare(a.Start.Col, b.Start.Col),
		)
	})
}
