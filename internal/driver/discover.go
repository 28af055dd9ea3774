package driver

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// DefaultInclude selects every Solidity file below the root.
var DefaultInclude = []string{"**/*.sol"}

// ErrBadPattern is returned for an include or exclude glob that does not
// parse.
var ErrBadPattern = errors.New("invalid glob pattern")

// Discover lists the files to lint, sorted and without duplicates.
//
// Every entry of paths is either a file, which is taken as is, or a
// directory searched with the include globs. Empty paths means root.
// Exclude globs are matched against the slash path relative to root.
func Discover(root string, paths, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}
	if len(paths) == 0 {
		paths = []string{root}
	}
	for _, p := range slices.Concat(include, exclude) {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Wrapf(ErrBadPattern, "%q", p)
		}
	}

	var found []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", p)
		}
		if !info.IsDir() {
			found = append(found, filepath.Clean(p))
			continue
		}
		fsys := os.DirFS(p)
		for _, pattern := range include {
			matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, errors.Wrapf(err, "searching %s for %q", p, pattern)
			}
			for _, m := range matches {
				found = append(found, filepath.Join(p, filepath.FromSlash(m)))
			}
		}
	}

	found = lo.Reject(found, func(path string, _ int) bool {
		return excluded(root, path, exclude)
	})
	found = lo.Uniq(found)
	slices.Sort(found)
	return found, nil
}

func excluded(root, path string, exclude []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	return lo.SomeBy(exclude, func(pattern string) bool {
		ok, _ := doublestar.Match(pattern, rel)
		return ok
	})
}
