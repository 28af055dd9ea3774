package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"natlint/internal/ast"
	"natlint/internal/rules"
)

const header = "# natlint configuration. Every rule is listed with its default.\n\n"

// WriteDefault writes a configuration listing every rule with its default.
func WriteDefault(w io.Writer) error {
	var raw fileFormat
	for _, kind := range ast.Kinds {
		section := make(map[string]bool)
		for _, r := range rules.ForKind(kind) {
			section[rules.ConfigKey(r.Name())] = r.EnabledByDefault()
		}
		*raw.section(kind) = section
	}
	raw.Files = &Files{Include: []string{"**/*.sol"}, Exclude: []string{}}

	if _, err := io.WriteString(w, header); err != nil {
		return errors.Wrap(err, "writing config header")
	}
	return errors.Wrap(toml.NewEncoder(w).Encode(raw), "encoding config")
}

// Init writes the default configuration to path and refuses to overwrite.
func Init(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return errors.Wrapf(ErrExists, "%s", path)
		}
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := WriteDefault(f); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
