package parse

import (
	"github.com/dekarrin/m2comp/internal/ast"
	"github.com/dekarrin/m2comp/internal/lex"
)

func (p *Parser) parseDefinitionModule() ast.Node {
	pos := p.pos()
	p.matchToken(lex.DEFINITION, resyncModule)
	p.matchToken(lex.MODULE, resyncModule)
	name := p.ident(resyncImport)
	p.matchToken(lex.Semicolon, resyncImport)

	imports := p.parseImportSection(true)
	defs := p.parseDefList()

	p.matchToken(lex.END, resyncModule)
	p.ident(resyncModule)
	p.matchToken(lex.Period, resyncModule)

	return ast.NewDefinitionModule(pos, name, imports, defs)
}

func (p *Parser) parseImplementationModule() ast.Node {
	pos := p.pos()
	p.matchToken(lex.IMPLEMENTATION, resyncModule)
	p.matchToken(lex.MODULE, resyncModule)
	name := p.ident(resyncImport)
	p.matchToken(lex.Semicolon, resyncImport)

	imports := p.parseImportSection(false)
	body := p.parseBlockBody()

	p.matchToken(lex.END, resyncModule)
	p.ident(resyncModule)
	p.matchToken(lex.Period, resyncModule)

	return ast.NewImplementationModule(pos, name, imports, body)
}

func (p *Parser) parseProgramModule() ast.Node {
	pos := p.pos()
	p.matchToken(lex.MODULE, resyncModule)
	name := p.ident(resyncImport)
	p.matchToken(lex.Semicolon, resyncImport)

	imports := p.parseImportSection(false)
	body := p.parseBlockBody()

	p.matchToken(lex.END, resyncModule)
	p.ident(resyncModule)
	p.matchToken(lex.Period, resyncModule)

	return ast.NewProgramModule(pos, name, imports, body)
}

// parseBlockBody parses the DefList + optional BEGIN stmtList that forms an
// implementation/program module's (or procedure's) body. It returns the
// definitions alone when there is no BEGIN, the statement list alone when
// there are no definitions, and otherwise a two-item DefList holding the
// definitions' DefList followed by the statement list. Kept simple per
// SPEC_FULL.md scope: the compiler front end's job ends at a well-formed
// AST, not execution.
func (p *Parser) parseBlockBody() ast.Node {
	defs := p.parseDefList()
	if p.cur().Kind != lex.BEGIN {
		return defs
	}
	p.lx.Advance() // BEGIN
	body := p.parseStmtSeq(resyncModule)
	if defs.Tag() == ast.Empty {
		return body
	}
	return ast.NewDefList(defs.Pos(), defs, body)
}

// parseImportSection collects zero or more IMPORT (or FROM ... IMPORT)
// clauses. public selects the definition-module grammar, where a trailing
// '+' after an imported identifier marks it re-exported; with public false
// (implementation/program modules) '+' is not recognized. Both forms accept
// a leading FROM Ident.
func (p *Parser) parseImportSection(public bool) ast.Node {
	pos := p.pos()
	var imports []ast.Node
	for p.cur().Kind == lex.IMPORT || p.cur().Kind == lex.FROM {
		imports = append(imports, p.parseImport(public))
	}
	if len(imports) == 0 {
		return ast.NewEmpty(pos)
	}
	return ast.NewImportList(pos, imports...)
}

func (p *Parser) parseImport(public bool) ast.Node {
	pos := p.pos()

	var module ast.Node
	if p.cur().Kind == lex.FROM {
		p.lx.Advance()
		module = p.ident(resyncImport)
		p.matchToken(lex.IMPORT, resyncImport)
	} else {
		p.matchToken(lex.IMPORT, resyncImport)
		module = ast.NewEmpty(pos)
	}

	var names []ast.Node
	for {
		namePos := p.pos()
		name := p.ident(resyncImport)
		if public && p.cur().Kind == lex.Plus {
			p.lx.Advance()
			name = ast.NewReexport(namePos, name)
		}
		names = append(names, name)
		if p.cur().Kind != lex.Comma {
			break
		}
		p.lx.Advance()
	}
	p.matchToken(lex.Semicolon, resyncImport)

	items := append([]ast.Node{module}, names...)
	return ast.NewImport(pos, items[0], items[1:]...)
}

func (p *Parser) parseDefList() ast.Node {
	pos := p.pos()
	var defs []ast.Node
	for {
		switch p.cur().Kind {
		case lex.CONST:
			defs = append(defs, p.parseConstDefs()...)
		case lex.TYPE:
			defs = append(defs, p.parseTypeDefs()...)
		case lex.VAR:
			p.skipVarSection()
		case lex.PROCEDURE:
			defs = append(defs, p.parseProcedure())
		case lex.TODO:
			defs = append(defs, p.parseTodo())
		default:
			if len(defs) == 0 {
				return ast.NewEmpty(pos)
			}
			return ast.NewDefList(pos, defs...)
		}
	}
}

// skipVarSection consumes a VAR section without emitting definition nodes:
// variable declarations do not appear in the AST, and variables show up only
// as designators in statements, matching the original scope's omission of a
// symbol table.
func (p *Parser) skipVarSection() {
	p.matchToken(lex.VAR, resyncDef)
	for p.cur().Kind == lex.Identifier {
		for {
			p.ident(resyncDef)
			if p.cur().Kind != lex.Comma {
				break
			}
			p.lx.Advance()
		}
		p.matchToken(lex.Colon, resyncDef)
		p.parseType(resyncDef)
		p.matchToken(lex.Semicolon, resyncDef)
	}
}

func (p *Parser) parseTodo() ast.Node {
	pos := p.pos()
	p.matchToken(lex.TODO, resyncDef)
	note := p.ident(resyncDef)
	p.matchToken(lex.Semicolon, resyncDef)
	return ast.NewTodo(pos, note)
}
