package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natlint/internal/ast"
	"natlint/internal/doctree"
	"natlint/internal/natspec"
	"natlint/internal/parser"
	"natlint/internal/rules"
	"natlint/internal/source"
)

type hit struct {
	kind ast.DeclKind
	rule string
	msg  string
	text string // source text at the violation span
}

// lint runs rs over src and returns every violation in walk order.
func lint(t *testing.T, src string, rs ...rules.Rule) []hit {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sol", []byte(src))
	res := parser.ParseFile(fs, id, parser.Options{})
	require.False(t, res.Failed(), "diagnostics: %v", res.Bag.Items())
	file := fs.Get(id)
	items, err := doctree.Build(file, res.Unit, res.Comments)
	require.NoError(t, err)

	var hits []hit
	doctree.Walk(items, func(parent, item *doctree.Item) bool {
		for _, r := range rs {
			if r.Target() != item.Kind() {
				continue
			}
			if v := r.Check(parent, item); v != nil {
				hits = append(hits, hit{item.Kind(), v.RuleName, v.Err.Error(), file.Text(v.Loc)})
			}
		}
		return true
	})
	return hits
}

func rule(t *testing.T, kind ast.DeclKind, name string) rules.Rule {
	t.Helper()
	r, ok := rules.Lookup(kind, name)
	require.True(t, ok, "no %s rule %s", kind, name)
	return r
}

func TestViolationErrorMessages(t *testing.T) {
	tests := []struct {
		err  rules.ViolationError
		want string
	}{
		{rules.ViolationError{Kind: rules.MissingComment, Tag: natspec.Notice}, "Missing a @notice comment"},
		{rules.ViolationError{Kind: rules.TooManyComments, Tag: natspec.Title}, "Too many @title comments"},
		{rules.ViolationError{Kind: rules.CommentNotAllowed, Tag: natspec.Author}, "@author comments are not allowed on this construct"},
		{rules.ViolationError{Kind: rules.MissingCommentFor, Tag: rules.Variant, Name: "None"}, "Missing a @custom:variant comment for `None`"},
		{rules.ViolationError{Kind: rules.OnlyInheritdoc}, "Inheritdoc comment must be the only comment"},
		{rules.ViolationError{Kind: rules.ParseError, Msg: "boom"}, "Error while parsing: boom"},
	}
	for _, tt := range tests {
		assert.EqualError(t, tt.err, tt.want)
	}
}

func TestCatalog(t *testing.T) {
	all := rules.All()
	for _, r := range all {
		assert.NotEmpty(t, r.Description(), r.Name())
		got, ok := rules.Lookup(r.Target(), r.Name())
		require.True(t, ok)
		assert.Equal(t, r.Name(), got.Name())
	}
	for _, k := range ast.Kinds {
		names := make([]string, 0)
		for _, r := range rules.ForKind(k) {
			assert.Equal(t, k, r.Target())
			names = append(names, r.Name())
		}
		assert.IsIncreasing(t, names, "rules of %s must be registered alphabetically", k)
	}

	off := map[string]bool{}
	for _, r := range all {
		if !r.EnabledByDefault() {
			off[r.Target().String()+"."+r.Name()] = true
		}
	}
	assert.Equal(t, map[string]bool{
		"contract.MissingAuthor":  true,
		"enum.MissingAuthor":      true,
		"enum.MissingTitle":       true,
		"enum.MissingVariant":     true,
		"function.OnlyInheritdoc": true,
		"struct.MissingAuthor":    true,
		"struct.MissingTitle":     true,
	}, off)
	assert.Len(t, rules.Defaults(), len(all)-len(off))

	assert.Equal(t, "Contracts must have an author comment.", rule(t, ast.KindContract, "MissingAuthor").Description())
	assert.Equal(t, "Events must not have more than one notice comment.", rule(t, ast.KindEvent, "TooManyNotice").Description())
	assert.Equal(t, "Types must not have a param comment.", rule(t, ast.KindType, "NoParam").Description())

	assert.Equal(t, "missing_inheritdoc", rules.ConfigKey("MissingInheritdoc"))
	assert.Equal(t, "too_many_notice", rules.ConfigKey("TooManyNotice"))
	assert.Contains(t, rules.Names(), "MissingVariant")
	_, ok := rules.Lookup(ast.KindContract, "MissingVariant")
	assert.False(t, ok)
}

func TestCardinality(t *testing.T) {
	missing := rule(t, ast.KindContract, "MissingTitle")
	no := rule(t, ast.KindContract, "NoParam")
	tooMany := rule(t, ast.KindContract, "TooManyTitle")

	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"empty", "", []string{"MissingTitle"}},
		{"one", "/// @title A\n", nil},
		{"two", "/// @title A\n/// @title B\n", []string{"TooManyTitle"}},
		{"forbidden", "/// @title A\n/// @param x y\n", []string{"NoParam"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := lint(t, tt.doc+"contract C {}", missing, no, tooMany)
			var got []string
			for _, h := range hits {
				got = append(got, h.rule)
				assert.Equal(t, "contract C {}", h.text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScenarioUndocumentedContract(t *testing.T) {
	src := `contract C {
    function f(uint a) public {}
}`
	hits := lint(t, src, rules.Defaults()...)
	assert.Equal(t, []hit{
		{ast.KindContract, "MissingNotice", "Missing a @notice comment", src},
		{ast.KindContract, "MissingTitle", "Missing a @title comment", src},
		{ast.KindFunction, "MissingInheritdoc", "Missing a @inheritdoc comment", "function f(uint a) public {}"},
		{ast.KindFunction, "MissingNotice", "Missing a @notice comment", "function f(uint a) public {}"},
		{ast.KindFunction, "MissingParams", "Missing a @param comment", "function f(uint a) public {}"},
	}, hits)
}

func TestScenarioTwoNotices(t *testing.T) {
	src := "contract C {\n/// @notice a\n/// @notice b\nfunction f() public {}\n}"
	hits := lint(t, src,
		rule(t, ast.KindFunction, "MissingNotice"),
		rule(t, ast.KindFunction, "TooManyNotice"))
	assert.Equal(t, []hit{
		{ast.KindFunction, "TooManyNotice", "Too many @notice comments", "function f() public {}"},
	}, hits)
}

func TestScenarioInheritdocExempts(t *testing.T) {
	src := `contract C is Base {
    /// @inheritdoc Base
    function f(uint a) public override returns (uint b) {}

    /// @inheritdoc Base
    uint public override v;
}`
	for _, h := range lint(t, src, rules.Defaults()...) {
		assert.Equal(t, ast.KindContract, h.kind, "unexpected %s violation %s", h.kind, h.rule)
	}
}

func TestScenarioEnumVariant(t *testing.T) {
	// Counts are compared before names. One tag for two variants reports
	// MissingComment at the enum, not MissingCommentFor at None; the named
	// report needs as many tags as variants.
	src := "/// @custom:variant Some A value\nenum Option { Some, None }"
	hits := lint(t, src, rule(t, ast.KindEnum, "MissingVariant"))
	assert.Equal(t, []hit{
		{ast.KindEnum, "MissingVariant", "Missing a @custom:variant comment", "enum Option { Some, None }"},
	}, hits, "cardinality is checked before names")

	src = "/// @custom:variant Some A value\n/// @custom:variant Other\nenum Option { Some, None }"
	hits = lint(t, src, rule(t, ast.KindEnum, "MissingVariant"))
	assert.Equal(t, []hit{
		{ast.KindEnum, "MissingVariant", "Missing a @custom:variant comment for `None`", "None"},
	}, hits)
}

func TestCorrespondence(t *testing.T) {
	params := rule(t, ast.KindFunction, "MissingParams")
	returns := rule(t, ast.KindFunction, "MissingReturn")

	tests := []struct {
		name string
		src  string
		want []hit
	}{
		{
			"all documented",
			"/// @param a x\n/// @param b y\n/// @return r z\nfunction f(uint a, uint b) returns (uint r) {}",
			nil,
		},
		{
			"order does not matter",
			"/// @param b y\n/// @param a x\nfunction f(uint a, uint b) {}",
			nil,
		},
		{
			"too many",
			"/// @param a x\n/// @param b y\nfunction f(uint a) {}",
			[]hit{{ast.KindFunction, "MissingParams", "Too many @param comments", "function f(uint a) {}"}},
		},
		{
			"wrong name",
			"/// @param a x\n/// @param c y\nfunction f(uint a, address b) {}",
			[]hit{{ast.KindFunction, "MissingParams", "Missing a @param comment for `b`", "address b"}},
		},
		{
			"unnamed skipped",
			"/// @param whatever x\n/// @return r y\nfunction f(uint) returns (uint r) {}",
			nil,
		},
		{
			"missing return",
			"function f() returns (uint) {}",
			[]hit{{ast.KindFunction, "MissingReturn", "Missing a @return comment", "function f() returns (uint) {}"}},
		},
		{
			"constructor params checked, returns not",
			"contract C {\n/// @param a x\nconstructor(uint a) {} modifier m(uint b) { _; } }",
			[]hit{{ast.KindFunction, "MissingParams", "Missing a @param comment", "modifier m(uint b) { _; }"}},
		},
		{
			"receive and fallback ignored",
			"contract C { receive() external payable {} fallback(bytes calldata d) external returns (bytes memory) {} }",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lint(t, tt.src, params, returns))
		})
	}
}

func TestFieldCorrespondence(t *testing.T) {
	hits := lint(t, `
/// @param a x
/// @param c y
struct S { uint a; uint b; }

/// @param a x
/// @param b y
error E(uint a, uint);

/// @param who x
event Ev(address indexed who);
`,
		rule(t, ast.KindStruct, "MissingParams"),
		rule(t, ast.KindError, "MissingParam"),
		rule(t, ast.KindEvent, "MissingParam"))
	assert.Equal(t, []hit{
		{ast.KindStruct, "MissingParams", "Missing a @param comment for `b`", "b"},
		{ast.KindError, "MissingParam", "Error while parsing: Field name could not be parsed", "uint"},
	}, hits)
}

func TestContextGating(t *testing.T) {
	fnRule := rule(t, ast.KindFunction, "MissingInheritdoc")
	varRule := rule(t, ast.KindVariable, "MissingInheritdoc")

	gated := func(src string) int {
		return len(lint(t, src, fnRule, varRule))
	}

	assert.Equal(t, 1, gated("contract C { function f() external {} }"))
	assert.Equal(t, 1, gated("abstract contract C { function f() internal override {} }"))
	assert.Equal(t, 1, gated("contract C { uint public x; }"))
	assert.Equal(t, 1, gated("contract C { uint internal override x; }"))

	assert.Zero(t, gated("interface I { function f() external; }"))
	assert.Zero(t, gated("contract C { function () external payable {} }"))
	assert.Zero(t, gated("library L { function f() public {} }"))
	assert.Zero(t, gated("function f() {}"))
	assert.Zero(t, gated("uint constant X = 1;"))
	assert.Zero(t, gated("contract C { function f() internal {} uint private x; }"))
	assert.Zero(t, gated("contract C { constructor() public {} modifier m() { _; } receive() external payable {} fallback() external {} }"))
	assert.Zero(t, gated("contract C { /// @inheritdoc B\nfunction f() public {} /// @inheritdoc B\nuint public x; }"))
}

func TestFunctionTypedVariable(t *testing.T) {
	src := "contract C {\n    function (uint256) external returns (bool) public callback;\n}"
	decl := "function (uint256) external returns (bool) public callback;"
	hits := lint(t, src,
		rule(t, ast.KindVariable, "MissingInheritdoc"),
		rule(t, ast.KindVariable, "MissingNotice"),
		rule(t, ast.KindFunction, "MissingNotice"),
	)
	assert.Equal(t, []hit{
		{ast.KindVariable, "MissingInheritdoc", "Missing a @inheritdoc comment", decl},
		{ast.KindVariable, "MissingNotice", "Missing a @notice comment", decl},
	}, hits)
}

func TestOnlyInheritdoc(t *testing.T) {
	r := rule(t, ast.KindFunction, "OnlyInheritdoc")
	assert.Empty(t, lint(t, "/// @inheritdoc B\nfunction f() {}", r))
	assert.Empty(t, lint(t, "/// @notice x\n/// @dev y\nfunction f() {}", r))
	assert.Equal(t, []hit{
		{ast.KindFunction, "OnlyInheritdoc", "Inheritdoc comment must be the only comment", "function f() {}"},
	}, lint(t, "/// @inheritdoc B\n/// @dev y\nfunction f() {}", r))
}

func TestRuleIgnoresOtherKinds(t *testing.T) {
	r := rule(t, ast.KindFunction, "MissingParams")
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.sol", []byte("struct S { uint a; }"))
	res := parser.ParseFile(fs, id, parser.Options{})
	items, err := doctree.Build(fs.Get(id), res.Unit, res.Comments)
	require.NoError(t, err)
	assert.Nil(t, r.Check(nil, items[0]))
}
