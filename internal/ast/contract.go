package ast

import "natlint/internal/source"

// ContractTy distinguishes the four contract-like definitions.
type ContractTy uint8

const (
	ContractConcrete ContractTy = iota
	ContractAbstract
	ContractInterface
	ContractLibrary
)

func (t ContractTy) String() string {
	switch t {
	case ContractAbstract:
		return "abstract contract"
	case ContractInterface:
		return "interface"
	case ContractLibrary:
		return "library"
	}
	return "contract"
}

// Base is one entry of an inheritance list. Constructor arguments are skipped.
type Base struct {
	Name string // possibly qualified: Lib.Base
	Span source.Span
}

type ContractDefinition struct {
	Span  source.Span
	Ty    ContractTy
	Name  *Ident
	Bases []Base
	Parts []Decl
}

func (*ContractDefinition) Kind() DeclKind     { return KindContract }
func (c *ContractDefinition) Loc() source.Span { return c.Span }
func (c *ContractDefinition) DeclName() string { return identName(c.Name) }

// IsConcrete reports whether the contract is a contract or abstract contract.
func (c *ContractDefinition) IsConcrete() bool {
	return c.Ty == ContractConcrete || c.Ty == ContractAbstract
}
