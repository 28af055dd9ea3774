package ast

// DeclKind is the closed set of declaration kinds that carry NatSpec.
type DeclKind uint8

const (
	KindContract DeclKind = iota
	KindFunction
	KindStruct
	KindEnum
	KindError
	KindEvent
	KindVariable
	KindType

	NumKinds = int(KindType) + 1
)

// Kinds lists every DeclKind in declaration order.
var Kinds = [NumKinds]DeclKind{
	KindContract, KindFunction, KindStruct, KindEnum,
	KindError, KindEvent, KindVariable, KindType,
}

func (k DeclKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindFunction:
		return "function"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindError:
		return "error"
	case KindEvent:
		return "event"
	case KindVariable:
		return "variable"
	case KindType:
		return "type"
	}
	return "unknown"
}

// ParseKind maps the lower-case name back to a DeclKind.
func ParseKind(s string) (DeclKind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
