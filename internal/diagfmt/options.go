// Package diagfmt renders lint results for terminals and tools.
package diagfmt

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Format selects a renderer.
type Format uint8

const (
	FormatPretty Format = iota
	FormatShort
	FormatJSON
	FormatSARIF
)

var formatNames = [...]string{
	FormatPretty: "pretty",
	FormatShort:  "short",
	FormatJSON:   "json",
	FormatSARIF:  "sarif",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat maps a --format value to a Format.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%q (want pretty, short, json or sarif)", s)
}

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the root-relative path.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures the human-readable report.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// Context is the number of source lines shown around a finding; a
	// negative value hides the excerpt.
	Context int8
	// ShowDescription adds the rule description under each finding.
	ShowDescription bool
	Summary         bool
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	PathMode PathMode
	// Max truncates the findings list; 0 keeps everything.
	Max int
	// IncludeSource adds the first source line of each finding.
	IncludeSource bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
	InvocationArgs []string
}
