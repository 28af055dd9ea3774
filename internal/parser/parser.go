package parser

import (
	"slices"

	"natlint/internal/ast"
	"natlint/internal/diag"
	"natlint/internal/lexer"
	"natlint/internal/source"
	"natlint/internal/token"
)

type Options struct {
	MaxErrors uint
	// Reporter additionally receives every diagnostic; Result.Bag always does.
	Reporter diag.Reporter
}

type Result struct {
	Unit     *ast.SourceUnit
	Comments []ast.Comment
	Bag      *diag.Bag
}

// Failed reports whether the file could not be parsed.
func (r Result) Failed() bool {
	return r.Bag.HasErrors()
}

// Parser holds the state for parsing one file. It stops at the first
// syntax error: a partially parsed file is never linted.
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	reporter diag.Reporter
	comments []ast.Comment
	failed   bool
	lastSpan source.Span // span of the last consumed token
}

// ParseFile parses the declarations of file.
func ParseFile(fs *source.FileSet, id source.FileID, opts Options) Result {
	file := fs.Get(id)
	bag := diag.NewBag(int(opts.MaxErrors)) // #nosec G115 -- small limit
	var reporter diag.Reporter = diag.BagReporter{Bag: bag}
	if opts.Reporter != nil {
		reporter = teeReporter{reporter, opts.Reporter}
	}

	p := Parser{
		lx:       lexer.New(file, lexer.Options{Reporter: reporter}),
		file:     file,
		opts:     opts,
		reporter: reporter,
		lastSpan: source.Span{File: file.ID},
	}
	unit := p.parseSourceUnit()
	return Result{
		Unit:     unit,
		Comments: p.comments,
		Bag:      bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// atContextual reports whether the next token is the identifier word.
func (p *Parser) atContextual(word string) bool {
	tok := p.lx.Peek()
	return tok.Kind == token.Ident && tok.Text == word
}

// parseSourceUnit is the top-level loop: until EOF, parse one item.
func (p *Parser) parseSourceUnit() *ast.SourceUnit {
	unit := &ast.SourceUnit{File: p.file.ID}
	start := p.lx.Peek().Span
	for !p.at(token.EOF) && !p.failed {
		decl, ok := p.parseSourceUnitPart()
		if !ok {
			break
		}
		if decl != nil {
			unit.Items = append(unit.Items, decl)
		}
	}
	eof := p.advance()
	unit.Span = source.Span{File: p.file.ID, Start: min(start.Start, eof.Span.End), End: eof.Span.End}
	return unit
}

// parseSourceUnitPart dispatches on the first token of a file-level item.
// Directives yield (nil, true).
func (p *Parser) parseSourceUnitPart() (ast.Decl, bool) {
	switch p.lx.Peek().Kind {
	case token.KwPragma, token.KwImport, token.KwUsing:
		return nil, p.skipStatement()
	case token.Semicolon:
		p.advance()
		return nil, true
	case token.KwContract, token.KwInterface, token.KwLibrary, token.KwAbstract:
		return p.parseContract()
	case token.KwFunction:
		return p.parseFunction()
	case token.KwStruct:
		return p.parseStruct()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwEvent:
		return p.parseEvent()
	case token.KwType:
		return p.parseTypeDefinition()
	case token.Ident, token.KwMapping:
		return p.parseErrorOrVariable()
	default:
		p.err(diag.SynUnexpectedTopLevel, "unexpected "+describe(p.lx.Peek())+" at file level")
		return nil, false
	}
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident, token.NumberLit, token.StringLit, token.Invalid:
		return "\"" + tok.Text + "\""
	default:
		return tok.Kind.String()
	}
}

type teeReporter struct {
	a, b diag.Reporter
}

func (t teeReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	t.a.Report(code, sev, primary, msg, notes)
	t.b.Report(code, sev, primary, msg, notes)
}
