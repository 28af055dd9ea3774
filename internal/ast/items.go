package ast

import "natlint/internal/source"

// VariableDeclaration is a struct member.
type VariableDeclaration struct {
	Span    source.Span
	Type    TypeName
	Storage StorageLocation
	Name    *Ident
}

type StructDefinition struct {
	Span   source.Span
	Name   *Ident
	Fields []VariableDeclaration
}

func (*StructDefinition) Kind() DeclKind     { return KindStruct }
func (s *StructDefinition) Loc() source.Span { return s.Span }
func (s *StructDefinition) DeclName() string { return identName(s.Name) }

type EnumDefinition struct {
	Span   source.Span
	Name   *Ident
	Values []*Ident
}

func (*EnumDefinition) Kind() DeclKind     { return KindEnum }
func (e *EnumDefinition) Loc() source.Span { return e.Span }
func (e *EnumDefinition) DeclName() string { return identName(e.Name) }

// ErrorParameter is one entry of an error definition; Name may be nil.
type ErrorParameter struct {
	Span source.Span
	Type TypeName
	Name *Ident
}

type ErrorDefinition struct {
	Span   source.Span
	Name   *Ident
	Fields []ErrorParameter
}

func (*ErrorDefinition) Kind() DeclKind     { return KindError }
func (e *ErrorDefinition) Loc() source.Span { return e.Span }
func (e *ErrorDefinition) DeclName() string { return identName(e.Name) }

// EventParameter is one entry of an event definition; Name may be nil.
type EventParameter struct {
	Span    source.Span
	Type    TypeName
	Indexed bool
	Name    *Ident
}

type EventDefinition struct {
	Span      source.Span
	Name      *Ident
	Fields    []EventParameter
	Anonymous bool
}

func (*EventDefinition) Kind() DeclKind     { return KindEvent }
func (e *EventDefinition) Loc() source.Span { return e.Span }
func (e *EventDefinition) DeclName() string { return identName(e.Name) }

// VarAttrKind tags a VariableAttribute.
type VarAttrKind uint8

const (
	VarVisibility VarAttrKind = iota
	VarConstant
	VarImmutable
	VarOverride
	VarTransient
)

type VariableAttribute struct {
	Kind       VarAttrKind
	Span       source.Span
	Visibility Visibility
	Overrides  []string
}

// VariableDefinition is a state variable or a file-level constant.
type VariableDefinition struct {
	Span        source.Span
	Type        TypeName
	Attrs       []VariableAttribute
	Name        *Ident
	Initializer *source.Span
}

func (*VariableDefinition) Kind() DeclKind     { return KindVariable }
func (v *VariableDefinition) Loc() source.Span { return v.Span }
func (v *VariableDefinition) DeclName() string { return identName(v.Name) }

// Visibility returns the declared visibility, or VisDefault.
func (v *VariableDefinition) Visibility() Visibility {
	for _, a := range v.Attrs {
		if a.Kind == VarVisibility {
			return a.Visibility
		}
	}
	return VisDefault
}

// IsOverride reports whether the variable carries an override specifier.
func (v *VariableDefinition) IsOverride() bool {
	for _, a := range v.Attrs {
		if a.Kind == VarOverride {
			return true
		}
	}
	return false
}

// TypeDefinition is a user-defined value type: type Price is uint128;
type TypeDefinition struct {
	Span       source.Span
	Name       *Ident
	Underlying TypeName
}

func (*TypeDefinition) Kind() DeclKind     { return KindType }
func (t *TypeDefinition) Loc() source.Span { return t.Span }
func (t *TypeDefinition) DeclName() string { return identName(t.Name) }
