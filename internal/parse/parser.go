// Package parse implements the recursive-descent parser driving off a
// lex.Lexer token stream and building internal/ast trees, following the
// match-and-resync error recovery contract the teacher's ictiobus parsers
// use (report, skip to a production-specific follow set, continue; never
// unwind the call stack on a non-fatal mismatch).
package parse

import (
	"github.com/dekarrin/m2comp/internal/ast"
	"github.com/dekarrin/m2comp/internal/diag"
	"github.com/dekarrin/m2comp/internal/intern"
	"github.com/dekarrin/m2comp/internal/lex"
	"github.com/dekarrin/m2comp/internal/source"
	"github.com/dekarrin/m2comp/internal/trace"
)

// Parser is a one-token-lookahead predictive recognizer over a single
// compilation unit. It owns no source state itself; that lives in the
// Lexer and Reader it was built from.
type Parser struct {
	lx   *lex.Lexer
	pool *intern.Pool
	sink *diag.Sink
	tr   *trace.Session
}

// New constructs a Parser over an already-primed Lexer.
func New(lx *lex.Lexer, pool *intern.Pool, sink *diag.Sink) *Parser {
	return &Parser{lx: lx, pool: pool, sink: sink}
}

// SetTrace attaches a trace session for --parser-debug output.
func (p *Parser) SetTrace(tr *trace.Session) {
	p.tr = tr
}

func (p *Parser) traceEnter(production string) {
	pos := p.pos()
	p.tr.Tracef(trace.ParserDebug, "enter %s at %d:%d, cur=%s", production, pos.Line, pos.Column, p.cur().Kind)
}

func (p *Parser) cur() lex.Token  { return p.lx.Current() }
func (p *Parser) pos() source.Position { return p.lx.Current().Position }

// matchToken is the first of the two canonical recovery primitives: if the
// current token's kind is expected, it is consumed and returned. Otherwise
// a syntactic diagnostic is reported and the parser skips tokens until one
// is a member of resync or end-of-file is reached.
func (p *Parser) matchToken(expected lex.Kind, resync TokenSet) (lex.Token, bool) {
	tok := p.cur()
	if tok.Kind == expected {
		p.lx.Advance()
		return tok, true
	}
	p.reportMismatch(expected.String(), tok)
	p.skipTo(resync)
	return tok, false
}

// matchSet is matchToken's FIRST-set counterpart: the current token must be
// a member of first rather than equal one specific kind.
func (p *Parser) matchSet(first TokenSet, resync TokenSet, what string) (lex.Token, bool) {
	tok := p.cur()
	if first.Has(tok.Kind) {
		return tok, true
	}
	p.reportMismatch(what, tok)
	p.skipTo(resync)
	return tok, false
}

func (p *Parser) reportMismatch(expected string, got lex.Token) {
	p.sink.Report(diag.Syntacticf(got.Position, got.Kind.String(), "expected %s, found %s", expected, got.Kind))
}

func (p *Parser) skipTo(resync TokenSet) {
	for !resync.Has(p.cur().Kind) && p.cur().Kind != lex.EndOfFile {
		p.lx.Advance()
	}
}

func (p *Parser) identName() string {
	tok := p.cur()
	if tok.Kind != lex.Identifier {
		return ""
	}
	return p.pool.String(tok.Lexeme)
}

// ident consumes the current token as a plain identifier, returning an
// ast.Ident leaf. Reports a syntactic error and resyncs if the current
// token is not an identifier.
func (p *Parser) ident(resync TokenSet) ast.Node {
	pos := p.pos()
	if p.cur().Kind != lex.Identifier {
		p.matchToken(lex.Identifier, resync)
		return ast.NewIdent(pos, "")
	}
	name := p.identName()
	p.lx.Advance()
	return ast.NewIdent(pos, name)
}

// qualident parses Ident ( '.' Ident )?, producing a plain Ident when there
// is no qualification and a Qualident otherwise.
func (p *Parser) qualident(resync TokenSet) ast.Node {
	pos := p.pos()
	first := p.ident(resync)
	if p.cur().Kind != lex.Period {
		return first
	}
	p.lx.Advance() // '.'
	second := p.ident(resync)
	return ast.NewQualident(pos, first, second)
}

// ParseCompilationUnit is the parser's entry point: dispatch on the first
// token to one of the three module forms.
func (p *Parser) ParseCompilationUnit() ast.Node {
	p.traceEnter("ParseCompilationUnit")
	switch p.cur().Kind {
	case lex.DEFINITION:
		return p.parseDefinitionModule()
	case lex.IMPLEMENTATION:
		return p.parseImplementationModule()
	case lex.MODULE:
		return p.parseProgramModule()
	default:
		p.reportMismatch("DEFINITION, IMPLEMENTATION, or MODULE", p.cur())
		p.skipTo(resyncModule)
		return ast.NewEmpty(p.pos())
	}
}
