// Package ast holds the declaration-level syntax tree of a Solidity file.
//
// Only what NatSpec linting needs is modelled: declarations, their names,
// parameter lists, members, attributes and source spans. Function bodies,
// initializers and modifier arguments are skipped by the parser and appear
// here only as spans.
package ast
