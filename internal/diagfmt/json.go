package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"natlint/internal/driver"
	"natlint/internal/lint"
)

// LocationJSON is a position range in a file.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

// FindingJSON is one violation.
type FindingJSON struct {
	Rule        string       `json:"rule"`
	Kind        string       `json:"kind"`
	Description string       `json:"description"`
	Message     string       `json:"message"`
	Location    LocationJSON `json:"location"`
	Source      string       `json:"source,omitempty"`
}

// SyntaxJSON is one syntax diagnostic of a file that failed to parse.
type SyntaxJSON struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
}

// FileErrorJSON is a file that could not be linted.
type FileErrorJSON struct {
	File    string       `json:"file"`
	Message string       `json:"message"`
	Syntax  []SyntaxJSON `json:"syntax,omitempty"`
}

// ReportJSON is the root of the JSON output.
type ReportJSON struct {
	Findings   []FindingJSON   `json:"findings"`
	Errors     []FileErrorJSON `json:"errors,omitempty"`
	Count      int             `json:"count"`
	Files      int             `json:"files"`
	Suppressed int             `json:"suppressed,omitempty"`
}

// BuildReport assembles the JSON document without encoding it.
func BuildReport(res *driver.Result, opts JSONOpts) ReportJSON {
	findings := res.Findings
	if opts.Max > 0 && opts.Max < len(findings) {
		findings = findings[:opts.Max]
	}

	out := ReportJSON{
		Findings:   make([]FindingJSON, 0, len(findings)),
		Count:      len(res.Findings),
		Files:      len(res.Files),
		Suppressed: res.Suppressed,
	}
	for _, f := range findings {
		fj := FindingJSON{
			Rule:        f.Rule,
			Kind:        f.Kind.String(),
			Description: f.Description,
			Message:     f.Message,
			Location: LocationJSON{
				File:      findingPath(res.FileSet, f, opts.PathMode),
				StartByte: f.Span.Start,
				EndByte:   f.Span.End,
				StartLine: f.Start.Line,
				StartCol:  f.Start.Col,
				EndLine:   f.End.Line,
				EndCol:    f.End.Col,
			},
		}
		if opts.IncludeSource && res.FileSet != nil && int(f.File) < res.FileSet.Len() {
			fj.Source = res.FileSet.Get(f.File).GetLine(f.Start.Line)
		}
		out.Findings = append(out.Findings, fj)
	}

	out.Errors = lo.Map(res.Errors, func(fe driver.FileError, _ int) FileErrorJSON {
		ej := FileErrorJSON{File: fe.Path, Message: fe.Err.Error()}
		var failure *lint.ParseFailure
		if errors.As(fe.Err, &failure) {
			for _, d := range failure.Diagnostics {
				ej.Syntax = append(ej.Syntax, SyntaxJSON{
					Code:      d.Code.ID(),
					Message:   d.Message,
					StartByte: d.Primary.Start,
					EndByte:   d.Primary.End,
				})
			}
		}
		return ej
	})
	return out
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, res *driver.Result, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(BuildReport(res, opts)), "failed to encode JSON output")
}
