package directive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natlint/internal/directive"
	"natlint/internal/source"
)

func scan(src string) (*directive.Set, *source.File) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sol", []byte(src))
	file := fs.Get(id)
	return directive.Scan(file), file
}

func TestScanNoDirectives(t *testing.T) {
	set, _ := scan("uint a;\nfunction foo() {}\n")
	assert.Zero(t, set.Len())
	assert.False(t, set.Suppressed(2, "MissingNotice"))
}

func TestScanDisableAll(t *testing.T) {
	set, file := scan("\n    // natlint-disable-next-line\n    uint a;\n")
	require.Equal(t, 1, set.Len())
	d := set.All()[0]
	assert.Equal(t, uint32(2), d.Line)
	assert.Equal(t, uint32(3), d.Target())
	assert.Nil(t, d.Rules)
	assert.Equal(t, "// natlint-disable-next-line", file.Text(d.Span))

	assert.True(t, set.Suppressed(3, "MissingNotice"))
	assert.True(t, set.Suppressed(3, "Anything"))
	assert.False(t, set.Suppressed(2, "MissingNotice"))
	assert.False(t, set.Suppressed(4, "MissingNotice"))
}

func TestScanRuleLists(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"single", "// natlint-disable-next-line MissingNotice", []string{"MissingNotice"}},
		{"commas", "// natlint-disable-next-line MissingNotice,MissingParam,AnotherRule", []string{"MissingNotice", "MissingParam", "AnotherRule"}},
		{"comma and space", "// natlint-disable-next-line MissingNotice, MissingParam", []string{"MissingNotice", "MissingParam"}},
		{"no space after slashes", "//natlint-disable-next-line MissingTitle", []string{"MissingTitle"}},
		{"trailing code", "uint a; // natlint-disable-next-line NoTitle", []string{"NoTitle"}},
		{"only separators", "// natlint-disable-next-line , ,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, _ := scan(tt.line + "\nuint a;\n")
			require.Equal(t, 1, set.Len())
			assert.Equal(t, tt.want, set.All()[0].Rules)
		})
	}
}

func TestScanMultiple(t *testing.T) {
	set, _ := scan(`
// natlint-disable-next-line
uint a;

// natlint-disable-next-line MissingNotice,MissingParam
function foo() {}
`)
	require.Equal(t, 2, set.Len())
	assert.True(t, set.Suppressed(3, "NoTitle"))
	assert.True(t, set.Suppressed(6, "MissingParam"))
	assert.False(t, set.Suppressed(6, "NoTitle"))
}

func TestUnknown(t *testing.T) {
	set, _ := scan("// natlint-disable-next-line MissingNotice, Bogus\nuint a;\n// natlint-disable-next-line\nuint b;\n")
	unknown := set.Unknown([]string{"MissingNotice"})
	require.Len(t, unknown, 1)
	assert.Equal(t, uint32(1), unknown[0].Line)
}

func TestNilSet(t *testing.T) {
	var set *directive.Set
	assert.False(t, set.Suppressed(1, "x"))
	assert.Zero(t, set.Len())
	assert.Nil(t, set.All())
}
