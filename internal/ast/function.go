package ast

import "natlint/internal/source"

// FunctionTy is the flavour of a function-like definition.
type FunctionTy uint8

const (
	FuncFunction FunctionTy = iota
	FuncConstructor
	FuncModifier
	FuncFallback
	FuncReceive
)

func (t FunctionTy) String() string {
	switch t {
	case FuncConstructor:
		return "constructor"
	case FuncModifier:
		return "modifier"
	case FuncFallback:
		return "fallback"
	case FuncReceive:
		return "receive"
	}
	return "function"
}

// Mutability of a function.
type Mutability uint8

const (
	MutNonPayable Mutability = iota
	MutPure
	MutView
	MutPayable
	MutConstant // pre-0.5 spelling of view
)

func (m Mutability) String() string {
	switch m {
	case MutPure:
		return "pure"
	case MutView:
		return "view"
	case MutPayable:
		return "payable"
	case MutConstant:
		return "constant"
	}
	return ""
}

// AttrKind tags a FunctionAttribute.
type AttrKind uint8

const (
	AttrVisibility AttrKind = iota
	AttrMutability
	AttrVirtual
	AttrOverride
	AttrModifier // modifier invocation or base constructor call
)

type FunctionAttribute struct {
	Kind       AttrKind
	Span       source.Span
	Visibility Visibility // AttrVisibility
	Mutability Mutability // AttrMutability
	Name       string     // AttrModifier
	Overrides  []string   // AttrOverride(A, B)
}

// Parameter is one entry of a parameter or returns list. Name is nil for
// unnamed parameters.
type Parameter struct {
	Span    source.Span
	Type    TypeName
	Storage StorageLocation
	Name    *Ident
}

type FunctionDefinition struct {
	Span       source.Span
	Ty         FunctionTy
	Name       *Ident
	Params     []Parameter
	Attributes []FunctionAttribute
	Returns    []Parameter
	Body       *source.Span // nil for declarations ending in ';'
}

func (*FunctionDefinition) Kind() DeclKind     { return KindFunction }
func (f *FunctionDefinition) Loc() source.Span { return f.Span }
func (f *FunctionDefinition) DeclName() string { return identName(f.Name) }

// Visibility returns the declared visibility, or VisDefault.
func (f *FunctionDefinition) Visibility() Visibility {
	for _, a := range f.Attributes {
		if a.Kind == AttrVisibility {
			return a.Visibility
		}
	}
	return VisDefault
}

// IsOverride reports whether the function carries an override specifier.
func (f *FunctionDefinition) IsOverride() bool {
	for _, a := range f.Attributes {
		if a.Kind == AttrOverride {
			return true
		}
	}
	return false
}
