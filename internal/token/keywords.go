package token

// keywords holds the reserved words the declaration parser dispatches on.
// Contextual words such as 'error', 'transient' and 'global' stay identifiers.
var keywords = map[string]Kind{
	"pragma":      KwPragma,
	"import":      KwImport,
	"using":       KwUsing,
	"contract":    KwContract,
	"interface":   KwInterface,
	"library":     KwLibrary,
	"abstract":    KwAbstract,
	"is":          KwIs,
	"function":    KwFunction,
	"constructor": KwConstructor,
	"modifier":    KwModifier,
	"fallback":    KwFallback,
	"receive":     KwReceive,
	"returns":     KwReturns,
	"struct":      KwStruct,
	"enum":        KwEnum,
	"event":       KwEvent,
	"type":        KwType,
	"mapping":     KwMapping,
	"public":      KwPublic,
	"external":    KwExternal,
	"internal":    KwInternal,
	"private":     KwPrivate,
	"pure":        KwPure,
	"view":        KwView,
	"payable":     KwPayable,
	"constant":    KwConstant,
	"immutable":   KwImmutable,
	"virtual":     KwVirtual,
	"override":    KwOverride,
	"memory":      KwMemory,
	"storage":     KwStorage,
	"calldata":    KwCalldata,
	"indexed":     KwIndexed,
	"anonymous":   KwAnonymous,
}

// LookupKeyword returns the keyword kind for ident. Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
