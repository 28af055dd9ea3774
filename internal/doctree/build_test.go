package doctree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natlint/internal/ast"
	"natlint/internal/doctree"
	"natlint/internal/natspec"
	"natlint/internal/parser"
	"natlint/internal/source"
	"natlint/internal/testkit"
)

func build(t *testing.T, src string) []*doctree.Item {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sol", []byte(src))
	res := parser.ParseFile(fs, id, parser.Options{})
	require.False(t, res.Failed(), "diagnostics: %v", res.Bag.Items())
	items, err := doctree.Build(fs.Get(id), res.Unit, res.Comments)
	require.NoError(t, err)
	require.NoError(t, testkit.CheckSpanInvariants(res.Unit, items, fs.Get(id)))
	return items
}

func texts(entries []natspec.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.String())
	}
	return out
}

func TestBuildHierarchy(t *testing.T) {
	items := build(t, `
/// @title Vault
contract Vault {
    /// @notice Balance
    uint256 public balance;

    function f() public {}

    struct S { uint a; }
}

/// @notice Free
function g() {}
`)
	require.Len(t, items, 2)
	vault := items[0]
	assert.Equal(t, ast.KindContract, vault.Kind())
	assert.Equal(t, "Vault", vault.Name())
	assert.Equal(t, []string{"@title Vault"}, texts(vault.Comments.Entries()))

	require.Len(t, vault.Children, 3)
	assert.Equal(t, []string{"@notice Balance"}, texts(vault.Children[0].Comments.Entries()))
	assert.Zero(t, vault.Children[1].Comments.Len())
	_, ok := vault.Children[2].AsStruct()
	assert.True(t, ok)

	g, ok := items[1].AsFunction()
	require.True(t, ok)
	assert.Equal(t, "g", g.DeclName())
	assert.Equal(t, []string{"@notice Free"}, texts(items[1].Comments.Entries()))
}

func TestBuildCommentRun(t *testing.T) {
	items := build(t, `
/// @notice Unrelated
uint constant X = 1;

/// @title T
// SPDX-ish regular comment
/**
 * @notice Multi
 *   line
 * @param a The a
 */
/* plain */
function f(uint a) {}
`)
	require.Len(t, items, 2)
	assert.Equal(t,
		[]string{"@title T", "@notice Multi line", "@param a The a"},
		texts(items[1].Comments.Entries()))
}

func TestBuildRunBrokenByCode(t *testing.T) {
	items := build(t, `
contract C {
    /// @notice For a
    uint a; uint b;
    /// @notice Same line block */
    event E(); /// @notice trailing
    error Err();
}
`)
	children := items[0].Children
	require.Len(t, children, 4)
	assert.Equal(t, 1, children[0].Comments.Len())
	assert.Zero(t, children[1].Comments.Len(), "code between comment and declaration breaks the run")
	assert.Equal(t, 1, children[2].Comments.Len())
	assert.Equal(t, []string{"@notice trailing"}, texts(children[3].Comments.Entries()))
}

func TestBuildKeepsDroppedLines(t *testing.T) {
	items := build(t, "/// @bogus x\n/// @notice ok\ncontract C {}\n")
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Comments.Len())
	require.Len(t, items[0].Comments.Dropped(), 1)
	assert.Equal(t, "@bogus x", items[0].Comments.Dropped()[0].Line)
}

func TestWalkPreOrder(t *testing.T) {
	items := build(t, "contract A { function f() public {} event E(); }\ncontract B {}\n")
	var visited []string
	doctree.Walk(items, func(parent, item *doctree.Item) bool {
		name := item.Name()
		if parent != nil {
			name = parent.Name() + "." + name
		}
		visited = append(visited, name)
		return true
	})
	assert.Equal(t, []string{"A", "A.f", "A.E", "B"}, visited)
}
