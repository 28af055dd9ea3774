package token

// Kind represents the category of a Solidity source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token. Elementary type names
	// (uint256, address, bytes32, ...) are identifiers too.
	Ident

	// KwPragma represents the 'pragma' keyword.
	KwPragma // pragma
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwUsing represents the 'using' keyword.
	KwUsing // using
	// KwContract represents the 'contract' keyword.
	KwContract // contract
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwLibrary represents the 'library' keyword.
	KwLibrary // library
	// KwAbstract represents the 'abstract' keyword.
	KwAbstract // abstract
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwConstructor represents the 'constructor' keyword.
	KwConstructor // constructor
	// KwModifier represents the 'modifier' keyword.
	KwModifier // modifier
	// KwFallback represents the 'fallback' keyword.
	KwFallback // fallback
	// KwReceive represents the 'receive' keyword.
	KwReceive // receive
	// KwReturns represents the 'returns' keyword.
	KwReturns // returns
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwEvent represents the 'event' keyword.
	KwEvent // event
	// KwType represents the 'type' keyword.
	KwType // type
	// KwMapping represents the 'mapping' keyword.
	KwMapping // mapping
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwExternal represents the 'external' keyword.
	KwExternal // external
	// KwInternal represents the 'internal' keyword.
	KwInternal // internal
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwPure represents the 'pure' keyword.
	KwPure // pure
	// KwView represents the 'view' keyword.
	KwView // view
	// KwPayable represents the 'payable' keyword.
	KwPayable // payable
	// KwConstant represents the 'constant' keyword.
	KwConstant // constant
	// KwImmutable represents the 'immutable' keyword.
	KwImmutable // immutable
	// KwVirtual represents the 'virtual' keyword.
	KwVirtual // virtual
	// KwOverride represents the 'override' keyword.
	KwOverride // override
	// KwMemory represents the 'memory' keyword.
	KwMemory // memory
	// KwStorage represents the 'storage' keyword.
	KwStorage // storage
	// KwCalldata represents the 'calldata' keyword.
	KwCalldata // calldata
	// KwIndexed represents the 'indexed' keyword.
	KwIndexed // indexed
	// KwAnonymous represents the 'anonymous' keyword.
	KwAnonymous // anonymous

	NumberLit
	StringLit

	Plus        // +
	Minus       // -
	Star        // *
	StarStar    // **
	Slash       // /
	Percent     // %
	Assign      // =
	OpAssign    // += -= *= /= %= |= &= ^= <<= >>=
	EqEq        // ==
	Bang        // !
	BangEq      // !=
	Lt          // <
	LtEq        // <=
	Gt          // >
	GtEq        // >=
	Shl         // <<
	Shr         // >>
	Amp         // &
	Pipe        // |
	Caret       // ^
	Tilde       // ~
	AndAnd      // &&
	OrOr        // ||
	PlusPlus    // ++
	MinusMinus  // --
	Question    // ?
	Colon       // :
	ColonAssign // := (inline assembly)
	Arrow       // -> (inline assembly)
	FatArrow    // =>
	Semicolon   // ;
	Comma       // ,
	Dot         // .
	LParen      // (
	RParen      // )
	LBrace      // {
	RBrace      // }
	LBracket    // [
	RBracket    // ]
)

var kindNames = [...]string{
	Invalid:   "invalid",
	EOF:       "end of file",
	Ident:     "identifier",
	NumberLit: "number",
	StringLit: "string",
}

// String returns the keyword or punctuation text for k, or a short
// description for identifiers and literals.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	if s, ok := kindText[k]; ok {
		return "'" + s + "'"
	}
	return "token"
}

var kindText = map[Kind]string{
	Plus: "+", Minus: "-", Star: "*", StarStar: "**", Slash: "/", Percent: "%",
	Assign: "=", OpAssign: "op=", EqEq: "==", Bang: "!", BangEq: "!=",
	Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=", Shl: "<<", Shr: ">>",
	Amp: "&", Pipe: "|", Caret: "^", Tilde: "~", AndAnd: "&&", OrOr: "||",
	PlusPlus: "++", MinusMinus: "--", Question: "?", Colon: ":",
	ColonAssign: ":=", Arrow: "->", FatArrow: "=>", Semicolon: ";", Comma: ",",
	Dot: ".", LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]",
}

func init() {
	for text, k := range keywords {
		kindText[k] = text
	}
}
