package parser_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natlint/internal/ast"
	"natlint/internal/diag"
	"natlint/internal/parser"
	"natlint/internal/source"
)

func parseSource(t *testing.T, src string) (parser.Result, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sol", []byte(src))
	return parser.ParseFile(fs, id, parser.Options{MaxErrors: 8}), fs.Get(id)
}

func mustParse(t *testing.T, src string) (*ast.SourceUnit, *source.File) {
	t.Helper()
	res, file := parseSource(t, src)
	require.False(t, res.Failed(), "diagnostics: %v", res.Bag.Items())
	return res.Unit, file
}

func TestParseVaultFixture(t *testing.T) {
	src, err := os.ReadFile("testdata/Vault.sol")
	require.NoError(t, err)
	unit, file := mustParse(t, string(src))

	require.Len(t, unit.Items, 6)
	vault, ok := unit.Items[0].(*ast.ContractDefinition)
	require.True(t, ok)
	assert.Equal(t, "Vault", vault.DeclName())
	assert.Equal(t, ast.ContractConcrete, vault.Ty)
	require.Len(t, vault.Bases, 2)
	assert.Equal(t, "Ownable", vault.Bases[0].Name)
	assert.Equal(t, `ERC4626("Vault", "V")`, file.Text(vault.Bases[1].Span))

	var kinds []ast.DeclKind
	for _, part := range vault.Parts {
		kinds = append(kinds, part.Kind())
	}
	assert.Equal(t, []ast.DeclKind{
		ast.KindEvent, ast.KindError, ast.KindStruct, ast.KindEnum, ast.KindType,
		ast.KindVariable, ast.KindVariable, ast.KindVariable, ast.KindVariable,
		ast.KindFunction, ast.KindFunction, ast.KindFunction, ast.KindFunction,
		ast.KindFunction, ast.KindFunction,
	}, kinds)

	ev := vault.Parts[0].(*ast.EventDefinition)
	require.Len(t, ev.Fields, 2)
	assert.True(t, ev.Fields[0].Indexed)
	assert.Equal(t, "assets", ev.Fields[1].Name.Name)

	errDef := vault.Parts[1].(*ast.ErrorDefinition)
	require.Len(t, errDef.Fields, 2)
	assert.Nil(t, errDef.Fields[1].Name)

	st := vault.Parts[2].(*ast.StructDefinition)
	require.Len(t, st.Fields, 2)
	assert.Equal(t, "mapping(address => bool)", st.Fields[1].Type.Text)

	en := vault.Parts[3].(*ast.EnumDefinition)
	require.Len(t, en.Values, 2)
	assert.Equal(t, "Closed", en.Values[1].Name)
	assert.Equal(t, "Closed", file.Text(en.Values[1].Span))

	td := vault.Parts[4].(*ast.TypeDefinition)
	assert.Equal(t, "uint256", td.Underlying.Text)

	positions := vault.Parts[5].(*ast.VariableDefinition)
	assert.Equal(t, "mapping(address account => Position)", positions.Type.Text)
	assert.Equal(t, ast.VisInternal, positions.Visibility())

	fee := vault.Parts[6].(*ast.VariableDefinition)
	assert.Equal(t, ast.VisPublic, fee.Visibility())
	require.NotNil(t, fee.Initializer)
	assert.Equal(t, "10 * 1e18", file.Text(*fee.Initializer))

	treasury := vault.Parts[8].(*ast.VariableDefinition)
	assert.Equal(t, "address payable", treasury.Type.Text)
	assert.Equal(t, ast.VisPrivate, treasury.Visibility())

	ctor := vault.Parts[9].(*ast.FunctionDefinition)
	assert.Equal(t, ast.FuncConstructor, ctor.Ty)
	require.Len(t, ctor.Attributes, 1)
	assert.Equal(t, ast.AttrModifier, ctor.Attributes[0].Kind)

	mod := vault.Parts[10].(*ast.FunctionDefinition)
	assert.Equal(t, ast.FuncModifier, mod.Ty)
	assert.Empty(t, mod.Params)

	deposit := vault.Parts[11].(*ast.FunctionDefinition)
	assert.Equal(t, "deposit", deposit.DeclName())
	assert.Equal(t, ast.VisExternal, deposit.Visibility())
	assert.True(t, deposit.IsOverride())
	require.Len(t, deposit.Params, 2)
	assert.Equal(t, "address receiver", file.Text(deposit.Params[1].Span))
	require.Len(t, deposit.Returns, 1)
	assert.Equal(t, "shares", deposit.Returns[0].Name.Name)
	require.NotNil(t, deposit.Body)

	preview := vault.Parts[12].(*ast.FunctionDefinition)
	assert.Nil(t, preview.Body)
	require.Len(t, preview.Params, 2)
	assert.Equal(t, ast.StorageCalldata, preview.Params[0].Storage)
	assert.Equal(t, "cb", preview.Params[1].Name.Name)
	require.Len(t, preview.Returns, 2)
	assert.Nil(t, preview.Returns[0].Name)

	assert.Equal(t, ast.FuncReceive, vault.Parts[13].(*ast.FunctionDefinition).Ty)
	assert.Equal(t, ast.FuncFallback, vault.Parts[14].(*ast.FunctionDefinition).Ty)

	assert.Equal(t, ast.KindVariable, unit.Items[1].Kind())
	assert.Equal(t, "helper", unit.Items[2].DeclName())
	assert.Equal(t, ast.ContractAbstract, unit.Items[3].(*ast.ContractDefinition).Ty)
	iface := unit.Items[4].(*ast.ContractDefinition)
	assert.Equal(t, ast.ContractInterface, iface.Ty)
	require.Len(t, iface.Parts, 1)
	assert.Equal(t, ast.ContractLibrary, unit.Items[5].(*ast.ContractDefinition).Ty)
}

func TestCommentsAreCollected(t *testing.T) {
	res, file := parseSource(t, "// SPDX\n/// @notice A\n/** @dev B */\ncontract A { /* x */ }\n/// tail\n")
	require.False(t, res.Failed())
	require.Len(t, res.Comments, 5)
	assert.Equal(t, ast.CommentLine, res.Comments[0].Kind)
	assert.Equal(t, ast.CommentDocLine, res.Comments[1].Kind)
	assert.Equal(t, ast.CommentDocBlock, res.Comments[2].Kind)
	assert.Equal(t, ast.CommentBlock, res.Comments[3].Kind)
	assert.Equal(t, "/// tail", file.Text(res.Comments[4].Span))
}

func TestDeclarationSpans(t *testing.T) {
	src := "contract C {\n    function f(uint a) public {}\n}\n"
	unit, file := mustParse(t, src)
	c := unit.Items[0].(*ast.ContractDefinition)
	assert.Equal(t, src[:len(src)-1], file.Text(c.Loc()))
	fn := c.Parts[0].(*ast.FunctionDefinition)
	assert.Equal(t, "function f(uint a) public {}", file.Text(fn.Loc()))
	assert.Equal(t, "a", file.Text(fn.Params[0].Name.Span))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"missing brace", "contract A {", diag.SynUnclosedDelimiter},
		{"garbage top level", "contract A {} 42", diag.SynUnexpectedTopLevel},
		{"bad member", "contract A { return; }", diag.SynExpectIdentifier},
		{"unclosed body", "contract A { function f() public { }", diag.SynUnclosedDelimiter},
		{"missing semicolon", "contract A { uint x }", diag.SynExpectSemicolon},
		{"bad enum", "enum E { 1 }", diag.SynEnumExpectVariant},
		{"type without is", "type T uint;", diag.SynTypeExpectIs},
		{"lexer error", "contract A { uint x = #; }", diag.LexUnknownChar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := parseSource(t, tt.src)
			require.True(t, res.Failed())
			assert.Equal(t, tt.code, res.Bag.Items()[0].Code, "diagnostics: %v", res.Bag.Items())
		})
	}
}

func TestMismatchedDelimiterNote(t *testing.T) {
	res, file := parseSource(t, "contract A { function f() public { ( } }")
	require.True(t, res.Failed())
	first := res.Bag.Items()[0]
	assert.Equal(t, diag.SynUnclosedDelimiter, first.Code)
	assert.Equal(t, "}", file.Text(first.Primary))
	require.Len(t, first.Notes, 1)
	assert.Equal(t, "{", file.Text(first.Notes[0].Span))
	assert.Equal(t, "group opened here", first.Notes[0].Msg)
}

func TestLegacyFunctionMembers(t *testing.T) {
	unit, file := mustParse(t, `contract C {
    function () external payable {}
    function () external;
    function (uint256) external returns (bool) public callback;
    function (uint) internal pure handler = helper;
    function () external[] private hooks;
}`)
	c := unit.Items[0].(*ast.ContractDefinition)
	require.Len(t, c.Parts, 5)

	for _, part := range c.Parts[:2] {
		fn, ok := part.(*ast.FunctionDefinition)
		require.True(t, ok, "%T", part)
		assert.Equal(t, ast.FuncFallback, fn.Ty)
		assert.Equal(t, ast.VisExternal, fn.Visibility())
	}

	callback, ok := c.Parts[2].(*ast.VariableDefinition)
	require.True(t, ok, "%T", c.Parts[2])
	assert.Equal(t, "callback", callback.DeclName())
	assert.Equal(t, "function (uint256) external returns (bool)", callback.Type.Text)
	assert.Equal(t, ast.VisPublic, callback.Visibility())
	assert.Equal(t, "function (uint256) external returns (bool) public callback;", file.Text(callback.Loc()))

	handler := c.Parts[3].(*ast.VariableDefinition)
	assert.Equal(t, "function (uint) internal pure", handler.Type.Text)
	assert.Equal(t, ast.VisDefault, handler.Visibility())
	require.NotNil(t, handler.Initializer)
	assert.Equal(t, "helper", file.Text(*handler.Initializer))

	hooks := c.Parts[4].(*ast.VariableDefinition)
	assert.Equal(t, "function () external[]", hooks.Type.Text)
	assert.Equal(t, ast.VisPrivate, hooks.Visibility())
}

func TestLegacyFunctionVariableRejectsModifiers(t *testing.T) {
	res, _ := parseSource(t, "contract C { function (uint) external returns (bool) onlyOwner cb; }")
	require.True(t, res.Failed())
	assert.Equal(t, diag.SynUnexpectedToken, res.Bag.Items()[0].Code)
}
