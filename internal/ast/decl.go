package ast

import "natlint/internal/source"

// Decl is implemented by every declaration node.
type Decl interface {
	Kind() DeclKind
	// Loc spans the whole declaration, body included.
	Loc() source.Span
	// DeclName is the declared name, or "" for unnamed functions.
	DeclName() string
}

// Ident is a name with its span.
type Ident struct {
	Name string
	Span source.Span
}

// TypeName is the source text of a type expression (uint256, mapping(...),
// IERC20, function (uint) external returns (bool), bytes32[2]).
type TypeName struct {
	Text string
	Span source.Span
}

// StorageLocation of a parameter or variable.
type StorageLocation uint8

const (
	StorageDefault StorageLocation = iota
	StorageMemory
	StorageStorage
	StorageCalldata
)

func (s StorageLocation) String() string {
	switch s {
	case StorageMemory:
		return "memory"
	case StorageStorage:
		return "storage"
	case StorageCalldata:
		return "calldata"
	}
	return ""
}

// Visibility of functions and state variables.
type Visibility uint8

const (
	VisDefault Visibility = iota
	VisPublic
	VisExternal
	VisInternal
	VisPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "public"
	case VisExternal:
		return "external"
	case VisInternal:
		return "internal"
	case VisPrivate:
		return "private"
	}
	return ""
}

func identName(id *Ident) string {
	if id == nil {
		return ""
	}
	return id.Name
}
