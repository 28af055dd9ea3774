package rules

import (
	"fmt"
	"strings"

	"natlint/internal/ast"
	"natlint/internal/doctree"
	"natlint/internal/natspec"
	"natlint/internal/source"
)

// Variant is the tag documenting one enum variant.
var Variant = natspec.CustomTag("variant")

// kindRules builds the rules of one declaration kind. noun is the plural
// used in descriptions.
type kindRules struct {
	kind ast.DeclKind
	noun string
}

func (k kindRules) meta(name, description string, enabled bool) meta {
	return meta{name: name, description: description, target: k.kind, enabled: enabled}
}

func (k kindRules) missing(name string, tag natspec.CommentTag, enabled bool) Rule {
	desc := fmt.Sprintf("%s must have %s comment.", k.noun, withArticle(tag))
	return tagRule{meta: k.meta(name, desc, enabled), tag: tag, polarity: required}
}

func (k kindRules) no(name string, tag natspec.CommentTag) Rule {
	desc := fmt.Sprintf("%s must not have %s comment.", k.noun, withArticle(tag))
	return tagRule{meta: k.meta(name, desc, true), tag: tag, polarity: forbidden}
}

func (k kindRules) tooMany(name string, tag natspec.CommentTag) Rule {
	desc := fmt.Sprintf("%s must not have more than one %s comment.", k.noun, tag.Kind)
	return tagRule{meta: k.meta(name, desc, true), tag: tag, polarity: single}
}

func (k kindRules) custom(name, description string, enabled bool, check checkFunc) Rule {
	return funcRule{meta: k.meta(name, description, enabled), check: check}
}

func withArticle(tag natspec.CommentTag) string {
	word := tag.Kind.String()
	if strings.ContainsRune("aeiou", rune(word[0])) {
		return "an " + word
	}
	return "a " + word
}

var (
	contracts = kindRules{ast.KindContract, "Contracts"}
	enums     = kindRules{ast.KindEnum, "Enums"}
	errs      = kindRules{ast.KindError, "Errors"}
	events    = kindRules{ast.KindEvent, "Events"}
	functions = kindRules{ast.KindFunction, "Functions"}
	structs   = kindRules{ast.KindStruct, "Structs"}
	types     = kindRules{ast.KindType, "Types"}
	variables = kindRules{ast.KindVariable, "Variables"}
)

// catalog lists the rules of every kind in alphabetical order.
var catalog = [ast.NumKinds][]Rule{
	ast.KindContract: {
		contracts.missing("MissingAuthor", natspec.Author, false),
		contracts.missing("MissingNotice", natspec.Notice, true),
		contracts.missing("MissingTitle", natspec.Title, true),
		contracts.no("NoInheritdoc", natspec.Inheritdoc),
		contracts.no("NoParam", natspec.Param),
		contracts.no("NoReturn", natspec.Return),
		contracts.tooMany("TooManyNotice", natspec.Notice),
		contracts.tooMany("TooManyTitle", natspec.Title),
	},
	ast.KindEnum: {
		enums.missing("MissingAuthor", natspec.Author, false),
		enums.missing("MissingNotice", natspec.Notice, true),
		enums.missing("MissingTitle", natspec.Title, false),
		enums.custom("MissingVariant", "Enums must document all variants.", false, enumMissingVariant),
		enums.no("NoInheritdoc", natspec.Inheritdoc),
		enums.no("NoParam", natspec.Param),
		enums.no("NoReturn", natspec.Return),
		enums.tooMany("TooManyNotice", natspec.Notice),
		enums.tooMany("TooManyTitle", natspec.Title),
	},
	ast.KindError: {
		errs.missing("MissingNotice", natspec.Notice, true),
		errs.custom("MissingParam", "Errors must document all parameters.", true, errorMissingParam),
		errs.no("NoAuthor", natspec.Author),
		errs.no("NoInheritdoc", natspec.Inheritdoc),
		errs.no("NoReturn", natspec.Return),
		errs.no("NoTitle", natspec.Title),
		errs.tooMany("TooManyNotice", natspec.Notice),
	},
	ast.KindEvent: {
		events.missing("MissingNotice", natspec.Notice, true),
		events.custom("MissingParam", "Events must document all parameters.", true, eventMissingParam),
		events.no("NoAuthor", natspec.Author),
		events.no("NoInheritdoc", natspec.Inheritdoc),
		events.no("NoReturn", natspec.Return),
		events.no("NoTitle", natspec.Title),
		events.tooMany("TooManyNotice", natspec.Notice),
	},
	ast.KindFunction: {
		functions.custom("MissingInheritdoc", "Public and override functions must have an inheritdoc comment.", true, functionMissingInheritdoc),
		functions.custom("MissingNotice", "Functions must have a notice or an inheritdoc comment.", true, functionMissingNotice),
		functions.custom("MissingParams", "Functions must have their parameters documented or have an inheritdoc comment.", true, functionMissingParams),
		functions.custom("MissingReturn", "Functions must have their return variables documented or have an inheritdoc comment.", true, functionMissingReturn),
		functions.no("NoAuthor", natspec.Author),
		functions.no("NoTitle", natspec.Title),
		functions.custom("OnlyInheritdoc", "If a function has an inheritdoc comment, then it must be the only comment.", false, functionOnlyInheritdoc),
		functions.tooMany("TooManyInheritdoc", natspec.Inheritdoc),
		functions.tooMany("TooManyNotice", natspec.Notice),
	},
	ast.KindStruct: {
		structs.missing("MissingAuthor", natspec.Author, false),
		structs.missing("MissingNotice", natspec.Notice, true),
		structs.custom("MissingParams", "Structs must document all parameters.", true, structMissingParams),
		structs.missing("MissingTitle", natspec.Title, false),
		structs.no("NoInheritdoc", natspec.Inheritdoc),
		structs.no("NoReturn", natspec.Return),
		structs.tooMany("TooManyNotice", natspec.Notice),
		structs.tooMany("TooManyTitle", natspec.Title),
	},
	ast.KindType: {
		types.missing("MissingNotice", natspec.Notice, true),
		types.no("NoAuthor", natspec.Author),
		types.no("NoInheritdoc", natspec.Inheritdoc),
		types.no("NoParam", natspec.Param),
		types.no("NoReturn", natspec.Return),
		types.no("NoTitle", natspec.Title),
		types.tooMany("TooManyNotice", natspec.Notice),
	},
	ast.KindVariable: {
		variables.custom("MissingInheritdoc", "Public and override variables must have an inheritdoc comment.", true, variableMissingInheritdoc),
		variables.custom("MissingNotice", "Variables must have a notice or an inheritdoc comment.", true, variableMissingNotice),
		variables.no("NoAuthor", natspec.Author),
		variables.no("NoParam", natspec.Param),
		variables.no("NoReturn", natspec.Return),
		variables.no("NoTitle", natspec.Title),
		variables.tooMany("TooManyInheritdoc", natspec.Inheritdoc),
		variables.tooMany("TooManyNotice", natspec.Notice),
	},
}

var none = source.Span{}

func functionMissingInheritdoc(parent, item *doctree.Item) (ViolationError, source.Span, bool) {
	fn, _ := item.AsFunction()
	if !inConcreteContract(parent) || fn.Ty != ast.FuncFunction || !exposed(fn.Visibility(), fn.IsOverride()) {
		return ViolationError{}, none, false
	}
	if len(item.Comments.IncludeTag(natspec.Inheritdoc)) == 0 {
		return missingComment(natspec.Inheritdoc), item.Loc(), true
	}
	return ViolationError{}, none, false
}

func functionMissingNotice(_, item *doctree.Item) (ViolationError, source.Span, bool) {
	return missingNotice(item)
}

func functionMissingParams(_, item *doctree.Item) (ViolationError, source.Span, bool) {
	fn, _ := item.AsFunction()
	if fn.Ty == ast.FuncReceive || fn.Ty == ast.FuncFallback || inherited(item) {
		return ViolationError{}, none, false
	}
	return correspondence{tag: natspec.Param}.check(item, paramElements(fn.Params))
}

func functionMissingReturn(_, item *doctree.Item) (ViolationError, source.Span, bool) {
	fn, _ := item.AsFunction()
	if fn.Ty != ast.FuncFunction || inherited(item) {
		return ViolationError{}, none, false
	}
	return correspondence{tag: natspec.Return}.check(item, paramElements(fn.Returns))
}

func functionOnlyInheritdoc(_, item *doctree.Item) (ViolationError, source.Span, bool) {
	if inherited(item) && item.Comments.Len() > 1 {
		return ViolationError{Kind: OnlyInheritdoc}, item.Loc(), true
	}
	return ViolationError{}, none, false
}

func variableMissingInheritdoc(parent, item *doctree.Item) (ViolationError, source.Span, bool) {
	v, _ := item.AsVariable()
	if !inConcreteContract(parent) || !exposed(v.Visibility(), v.IsOverride()) {
		return ViolationError{}, none, false
	}
	if len(item.Comments.IncludeTag(natspec.Inheritdoc)) == 0 {
		return missingComment(natspec.Inheritdoc), item.Loc(), true
	}
	return ViolationError{}, none, false
}

func variableMissingNotice(_, item *doctree.Item) (ViolationError, source.Span, bool) {
	return missingNotice(item)
}

// missingNotice requires a notice unless the item inherits its docs.
func missingNotice(item *doctree.Item) (ViolationError, source.Span, bool) {
	if inherited(item) || len(item.Comments.IncludeTag(natspec.Notice)) > 0 {
		return ViolationError{}, none, false
	}
	return missingComment(natspec.Notice), item.Loc(), true
}

var fieldParams = correspondence{tag: natspec.Param, unnamed: "Field name could not be parsed"}

func structMissingParams(_, item *doctree.Item) (ViolationError, source.Span, bool) {
	s, _ := item.AsStruct()
	elems := make([]element, 0, len(s.Fields))
	for _, f := range s.Fields {
		elems = append(elems, named(f.Name, f.Span))
	}
	return fieldParams.check(item, elems)
}

func errorMissingParam(_, item *doctree.Item) (ViolationError, source.Span, bool) {
	e, _ := item.AsError()
	elems := make([]element, 0, len(e.Fields))
	for _, f := range e.Fields {
		elems = append(elems, named(f.Name, f.Span))
	}
	return fieldParams.check(item, elems)
}

func eventMissingParam(_, item *doctree.Item) (ViolationError, source.Span, bool) {
	e, _ := item.AsEvent()
	elems := make([]element, 0, len(e.Fields))
	for _, f := range e.Fields {
		elems = append(elems, named(f.Name, f.Span))
	}
	return fieldParams.check(item, elems)
}

func enumMissingVariant(_, item *doctree.Item) (ViolationError, source.Span, bool) {
	e, _ := item.AsEnum()
	elems := make([]element, 0, len(e.Values))
	for _, v := range e.Values {
		elems = append(elems, named(v, item.Loc()))
	}
	c := correspondence{tag: Variant, unnamed: "Variant name could not be parsed", unnamedAtDecl: true}
	return c.check(item, elems)
}
