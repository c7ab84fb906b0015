package parse

import (
	"github.com/dekarrin/m2comp/internal/ast"
	"github.com/dekarrin/m2comp/internal/lex"
)

func (p *Parser) parseConstDefs() []ast.Node {
	p.matchToken(lex.CONST, resyncDef)
	var out []ast.Node
	for p.cur().Kind == lex.Identifier {
		pos := p.pos()
		name := p.ident(resyncDef)
		p.matchToken(lex.Equal, resyncDef)
		value := p.parseExpr(resyncDef)
		p.matchToken(lex.Semicolon, resyncDef)
		out = append(out, ast.NewConstDef(pos, name, value))
	}
	return out
}

func (p *Parser) parseTypeDefs() []ast.Node {
	p.matchToken(lex.TYPE, resyncDef)
	var out []ast.Node
	for p.cur().Kind == lex.Identifier {
		pos := p.pos()
		name := p.ident(resyncDef)
		if p.cur().Kind != lex.Equal {
			p.matchToken(lex.Semicolon, resyncDef)
			out = append(out, ast.NewOpaqueTypeDef(pos, name))
			continue
		}
		p.lx.Advance() // '='
		denoter := p.parseType(resyncDef)
		p.matchToken(lex.Semicolon, resyncDef)
		out = append(out, ast.NewTypeDef(pos, name, denoter))
	}
	return out
}

// parseType dispatches on the current token to one of the type-denoter
// sub-grammars named in spec.md §4.6: subrange, enumeration, set, array
// (fixed or open), record (with optional extension), pointer, opaque (bare
// identifier handled by the caller), and procedure type.
func (p *Parser) parseType(resync TokenSet) ast.Node {
	pos := p.pos()
	switch p.cur().Kind {
	case lex.LBracket:
		return p.parseSubrangeType(resync)
	case lex.LParen:
		return p.parseEnumType(resync)
	case lex.SET:
		p.lx.Advance()
		p.matchToken(lex.OF, resync)
		return ast.NewSetType(pos, p.parseType(resync))
	case lex.ARRAY:
		return p.parseArrayType(resync)
	case lex.RECORD:
		return p.parseRecordType(resync)
	case lex.POINTER:
		p.lx.Advance()
		p.matchToken(lex.TO, resync)
		return ast.NewPointerType(pos, p.parseType(resync))
	case lex.PROCEDURE:
		return p.parseProcType(resync)
	case lex.Identifier:
		name := p.identName()
		p.lx.Advance()
		return ast.NewNamedType(pos, name)
	default:
		p.matchSet(firstType, resync, "a type denoter")
		return ast.NewNamedType(pos, "")
	}
}

func (p *Parser) parseSubrangeType(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.LBracket, resync)
	low := p.parseExpr(resync)
	p.matchToken(lex.DotDot, resync)
	high := p.parseExpr(resync)
	p.matchToken(lex.RBracket, resync)
	return ast.NewSubrangeType(pos, low, high)
}

func (p *Parser) parseEnumType(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.LParen, resync)
	var idents []ast.Node
	idents = append(idents, p.ident(resync))
	for p.cur().Kind == lex.Comma {
		p.lx.Advance()
		idents = append(idents, p.ident(resync))
	}
	p.matchToken(lex.RParen, resync)
	return ast.NewEnumType(pos, idents...)
}

func (p *Parser) parseArrayType(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.ARRAY, resync)
	if p.cur().Kind == lex.OF {
		p.lx.Advance()
		elem := p.parseType(resync)
		return ast.NewOpenArrayType(pos, elem)
	}
	indices := []ast.Node{p.parseType(resync)}
	for p.cur().Kind == lex.Comma {
		p.lx.Advance()
		indices = append(indices, p.parseType(resync))
	}
	p.matchToken(lex.OF, resync)
	elem := p.parseType(resync)
	// additional index dimensions nest left-to-right: ARRAY A, B OF T is
	// built as ARRAY A OF ARRAY B OF T
	for i := len(indices) - 1; i > 0; i-- {
		elem = ast.NewArrayType(pos, indices[i], elem)
	}
	return ast.NewArrayType(pos, indices[0], elem)
}

func (p *Parser) parseRecordType(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.RECORD, resync)

	var base ast.Node
	if p.cur().Kind == lex.LParen {
		p.lx.Advance()
		base = p.parseType(resync)
		p.matchToken(lex.RParen, resync)
	}

	var fields []ast.Node
	for p.cur().Kind == lex.Identifier {
		fields = append(fields, p.parseFieldList(resync))
		if p.cur().Kind == lex.Semicolon {
			p.lx.Advance()
		}
	}
	p.matchToken(lex.END, resync)

	if len(fields) == 0 {
		fields = []ast.Node{ast.NewEmpty(pos)}
	}
	record := ast.NewRecordType(pos, fields...)
	if base != nil {
		return ast.NewRecordExtension(pos, base, record)
	}
	return record
}

func (p *Parser) parseFieldList(resync TokenSet) ast.Node {
	pos := p.pos()
	var names []ast.Node
	names = append(names, p.ident(resync))
	for p.cur().Kind == lex.Comma {
		p.lx.Advance()
		names = append(names, p.ident(resync))
	}
	p.matchToken(lex.Colon, resync)
	typ := p.parseType(resync)

	fields := make([]ast.Node, len(names))
	for i, n := range names {
		fields[i] = ast.NewField(n.Pos(), n, typ)
	}
	return ast.NewFieldList(pos, fields...)
}

func (p *Parser) parseProcType(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.PROCEDURE, resync)

	var params ast.Node = ast.NewEmpty(pos)
	if p.cur().Kind == lex.LParen {
		params = p.parseProcTypeParams(resync)
	}

	var ret ast.Node = ast.NewEmpty(pos)
	if p.cur().Kind == lex.Colon {
		p.lx.Advance()
		ret = p.parseType(resync)
	}
	return ast.NewProcType(pos, params, ret)
}

func (p *Parser) parseProcTypeParams(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.LParen, resync)
	var types []ast.Node
	if p.cur().Kind != lex.RParen {
		types = append(types, p.parseType(resync))
		for p.cur().Kind == lex.Comma {
			p.lx.Advance()
			types = append(types, p.parseType(resync))
		}
	}
	p.matchToken(lex.RParen, resync)
	if len(types) == 0 {
		return ast.NewEmpty(pos)
	}
	return ast.NewFormalParamList(pos, types...)
}

func (p *Parser) parseProcedure() ast.Node {
	pos := p.pos()
	p.matchToken(lex.PROCEDURE, resyncDef)
	name := p.ident(resyncDef)

	var params ast.Node = ast.NewEmpty(pos)
	if p.cur().Kind == lex.LParen {
		params = p.parseFormalParams(resyncDef)
	}

	var ret ast.Node = ast.NewEmpty(pos)
	if p.cur().Kind == lex.Colon {
		p.lx.Advance()
		ret = p.parseType(resyncDef)
	}
	p.matchToken(lex.Semicolon, resyncDef)

	heading := ast.NewProcedureHeading(pos, name, params, ret)

	if p.cur().Kind != lex.BEGIN && !p.atProcedureBodyDefs() {
		return ast.NewProcedureDef(pos, heading, ast.NewEmpty(pos))
	}

	body := p.parseBlockBody()
	p.matchToken(lex.END, resyncDef)
	p.ident(resyncDef)
	p.matchToken(lex.Semicolon, resyncDef)
	return ast.NewProcedureDef(pos, heading, body)
}

// atProcedureBodyDefs reports whether the current token starts a nested
// CONST/TYPE/VAR/PROCEDURE block that precedes a procedure's BEGIN, as
// opposed to the bare-heading form found in a definition module.
func (p *Parser) atProcedureBodyDefs() bool {
	switch p.cur().Kind {
	case lex.CONST, lex.TYPE, lex.VAR, lex.PROCEDURE:
		return true
	}
	return false
}

func (p *Parser) parseFormalParams(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.LParen, resync)
	var params []ast.Node
	if p.cur().Kind != lex.RParen {
		params = append(params, p.parseFormalParam(resync))
		for p.cur().Kind == lex.Semicolon {
			p.lx.Advance()
			params = append(params, p.parseFormalParam(resync))
		}
	}
	p.matchToken(lex.RParen, resync)
	if len(params) == 0 {
		return ast.NewEmpty(pos)
	}
	return ast.NewFormalParamList(pos, params...)
}

func (p *Parser) parseFormalParam(resync TokenSet) ast.Node {
	pos := p.pos()
	isVar := false
	if p.cur().Kind == lex.VAR {
		p.lx.Advance()
		isVar = true
	}
	name := p.ident(resync)
	p.matchToken(lex.Colon, resync)
	typ := p.parseType(resync)
	if isVar {
		return ast.NewVarParam(pos, name, typ)
	}
	return ast.NewFormalParam(pos, name, typ)
}
