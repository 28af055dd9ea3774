package diagfmt

import (
	"natlint/internal/driver"
	"natlint/internal/source"
)

func findingPath(fs *source.FileSet, f driver.Finding, mode PathMode) string {
	if fs == nil || int(f.File) >= fs.Len() {
		return f.Path
	}
	file := fs.Get(f.File)
	switch mode {
	case PathModeAbsolute:
		return file.FormatPath("absolute", "")
	case PathModeRelative:
		return file.FormatPath("relative", "")
	case PathModeBasename:
		return file.FormatPath("basename", "")
	default:
		return f.Path
	}
}
