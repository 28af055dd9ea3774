package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natlint/internal/ast"
	"natlint/internal/config"
	"natlint/internal/rules"
)

func enabled(t *testing.T, cfg *config.Config, kind ast.DeclKind, name string) bool {
	t.Helper()
	r, ok := rules.Lookup(kind, name)
	require.True(t, ok)
	return cfg.Enabled(r)
}

func TestDefaultMatchesCatalog(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, len(rules.Defaults()), len(cfg.Active()))
	assert.False(t, enabled(t, cfg, ast.KindFunction, "OnlyInheritdoc"))
	assert.True(t, enabled(t, cfg, ast.KindFunction, "MissingInheritdoc"))
}

func TestParseOverrides(t *testing.T) {
	cfg, err := config.Parse(`
[function_rules]
missing_inheritdoc = false
only_inheritdoc = true

[enum_rules]
missing_variant = true

[files]
include = ["src/**/*.sol"]
exclude = ["src/mocks/**"]
`)
	require.NoError(t, err)
	assert.False(t, enabled(t, cfg, ast.KindFunction, "MissingInheritdoc"))
	assert.True(t, enabled(t, cfg, ast.KindFunction, "OnlyInheritdoc"))
	assert.True(t, enabled(t, cfg, ast.KindEnum, "MissingVariant"))
	assert.True(t, enabled(t, cfg, ast.KindVariable, "MissingInheritdoc"), "other kinds keep defaults")
	assert.Equal(t, []string{"src/**/*.sol"}, cfg.Files.Include)
	assert.Equal(t, []string{"src/mocks/**"}, cfg.Files.Exclude)
	assert.Len(t, cfg.Active(), len(rules.Defaults())+1)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown section", "[bogus_rules]\nx = true\n", "bogus_rules"},
		{"unknown rule", "[contract_rules]\nmissing_variant = true\n", "contract_rules.missing_variant"},
		{"unknown files key", "[files]\nonly = []\n", "files.only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse(tt.doc)
			require.ErrorIs(t, err, config.ErrUnknownKey)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := config.Parse("[contract_rules]\nmissing_title = \"yes\"\n")
	assert.Error(t, err)
}

func TestLoadMissingFileIsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, config.Default().Fingerprint(), cfg.Fingerprint())
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, config.WriteDefault(&buf))
	out := buf.String()
	for _, kind := range ast.Kinds {
		assert.Contains(t, out, "["+config.SectionName(kind)+"]")
	}
	assert.Contains(t, out, "only_inheritdoc = false")
	assert.Contains(t, out, "too_many_notice = true")

	cfg, err := config.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Fingerprint(), cfg.Fingerprint())
	assert.Equal(t, []string{"**/*.sol"}, cfg.Files.Include)
}

func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	require.NoError(t, config.Init(path))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)

	require.ErrorIs(t, config.Init(path), config.ErrExists)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	_, ok, err := config.Find(nested)
	require.NoError(t, err)
	if ok {
		t.Skip("a natlint.toml exists above the temp directory")
	}

	require.NoError(t, os.WriteFile(filepath.Join(root, config.DefaultFileName), nil, 0o600))
	path, ok, err := config.Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, config.DefaultFileName), path)
}

func TestFingerprintChangesWithRules(t *testing.T) {
	cfg, err := config.Parse("[struct_rules]\nmissing_title = true\n")
	require.NoError(t, err)
	assert.NotEqual(t, config.Default().Fingerprint(), cfg.Fingerprint())
}
