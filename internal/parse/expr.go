package parse

import (
	"github.com/dekarrin/m2comp/internal/ast"
	"github.com/dekarrin/m2comp/internal/diag"
	"github.com/dekarrin/m2comp/internal/lex"
	"github.com/dekarrin/m2comp/internal/source"
)

// diagLexicalNumberError reports a numeric literal that the lexer accepted
// syntactically but that overflows the target integer/float representation
// (e.g. a whole-number literal wider than 64 bits).
func diagLexicalNumberError(pos source.Position, err error) diag.Diagnostic {
	return diag.Lexicalf(pos, "", "invalid numeric literal: %s", err)
}

var relOpBuilders = map[lex.Kind]func(source.Position, ast.Node, ast.Node) ast.Node{
	lex.Equal:        ast.NewEq,
	lex.NotEqual:     ast.NewNeq,
	lex.Less:         ast.NewLt,
	lex.LessEqual:    ast.NewLe,
	lex.Greater:      ast.NewGt,
	lex.GreaterEqual: ast.NewGe,
	lex.SameType:     ast.NewSameType,
	lex.IN:           ast.NewIn,
}

var addOpBuilders = map[lex.Kind]func(source.Position, ast.Node, ast.Node) ast.Node{
	lex.Plus:      ast.NewPlus,
	lex.Minus:     ast.NewMinus,
	lex.OR:        ast.NewOr,
	lex.Ampersand: ast.NewAmp,
	lex.Backslash: ast.NewBackslash,
}

var mulOpBuilders = map[lex.Kind]func(source.Position, ast.Node, ast.Node) ast.Node{
	lex.Asterisk: ast.NewAsterisk,
	lex.Slash:    ast.NewSlash,
	lex.DIV:      ast.NewDiv,
	lex.MOD:      ast.NewMod,
	lex.AND:      ast.NewAnd,
}

// parseExpr is the relational-precedence entry point, the lowest of the
// three levels named in spec.md §4.6.
func (p *Parser) parseExpr(resync TokenSet) ast.Node {
	p.traceEnter("parseExpr")
	left := p.parseAdditive(resync)
	if build, ok := relOpBuilders[p.cur().Kind]; ok {
		pos := p.pos()
		p.lx.Advance()
		right := p.parseAdditive(resync)
		left = build(pos, left, right)
	}
	return p.maybeTypeConv(left, resync)
}

func (p *Parser) parseAdditive(resync TokenSet) ast.Node {
	left := p.parseMultiplicative(resync)
	for {
		build, ok := addOpBuilders[p.cur().Kind]
		if !ok {
			return left
		}
		pos := p.pos()
		p.lx.Advance()
		right := p.parseMultiplicative(resync)
		left = build(pos, left, right)
	}
}

func (p *Parser) parseMultiplicative(resync TokenSet) ast.Node {
	left := p.parseUnary(resync)
	for {
		build, ok := mulOpBuilders[p.cur().Kind]
		if !ok {
			return left
		}
		pos := p.pos()
		p.lx.Advance()
		right := p.parseUnary(resync)
		left = build(pos, left, right)
	}
}

func (p *Parser) parseUnary(resync TokenSet) ast.Node {
	pos := p.pos()
	switch p.cur().Kind {
	case lex.NOT:
		p.lx.Advance()
		return ast.NewNot(pos, p.parseUnary(resync))
	case lex.Minus:
		p.lx.Advance()
		return ast.NewNegate(pos, p.parseUnary(resync))
	default:
		return p.parsePrimary(resync)
	}
}

func (p *Parser) maybeTypeConv(expr ast.Node, resync TokenSet) ast.Node {
	if p.cur().Kind != lex.DoubleColon {
		return expr
	}
	pos := p.pos()
	p.lx.Advance()
	typ := p.parseType(resync)
	return ast.NewTypeConv(pos, expr, typ)
}

func (p *Parser) parsePrimary(resync TokenSet) ast.Node {
	pos := p.pos()
	tok := p.cur()
	switch tok.Kind {
	case lex.WholeNumber:
		v, err := lex.ParseWholeNumber(p.pool.String(tok.Lexeme))
		p.lx.Advance()
		if err != nil {
			p.sink.Report(diagLexicalNumberError(pos, err))
			return ast.NewIntLiteral(pos, 0)
		}
		return ast.NewIntLiteral(pos, v)
	case lex.CharCode:
		v, err := lex.ParseCharCode(p.pool.String(tok.Lexeme))
		p.lx.Advance()
		if err != nil {
			p.sink.Report(diagLexicalNumberError(pos, err))
			return ast.NewCharLiteral(pos, 0)
		}
		return ast.NewCharLiteral(pos, rune(v))
	case lex.RealNumber:
		v, err := lex.ParseRealNumber(p.pool.String(tok.Lexeme))
		p.lx.Advance()
		if err != nil {
			p.sink.Report(diagLexicalNumberError(pos, err))
			return ast.NewRealLiteral(pos, 0)
		}
		return ast.NewRealLiteral(pos, v)
	case lex.QuotedString:
		text := p.pool.String(tok.Lexeme)
		p.lx.Advance()
		return ast.NewStringLiteral(pos, text)
	case lex.LParen:
		p.lx.Advance()
		inner := p.parseExpr(resync)
		p.matchToken(lex.RParen, resync)
		return inner
	case lex.LBrace:
		return p.parseSetLiteral(resync)
	case lex.Identifier:
		if kind, ok := p.lx.Bindable(tok.Lexeme); ok && kind == lex.NIL {
			p.lx.Advance()
			return ast.NewNilLiteral(pos)
		}
		return p.parseDesignator(resync)
	default:
		p.matchSet(firstExpr, resync, "an expression")
		return ast.NewEmpty(pos)
	}
}

func (p *Parser) parseSetLiteral(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.LBrace, resync)
	if p.cur().Kind == lex.RBrace {
		p.lx.Advance()
		return ast.NewSetLiteral(pos, ast.NewEmpty(pos))
	}
	var elems []ast.Node
	elems = append(elems, p.parseSetElement(resync))
	for p.cur().Kind == lex.Comma {
		p.lx.Advance()
		elems = append(elems, p.parseSetElement(resync))
	}
	p.matchToken(lex.RBrace, resync)
	return ast.NewSetLiteral(pos, ast.NewSetElementList(pos, elems...))
}

func (p *Parser) parseSetElement(resync TokenSet) ast.Node {
	pos := p.pos()
	low := p.parseExpr(resync)
	if p.cur().Kind == lex.DotDot {
		p.lx.Advance()
		high := p.parseExpr(resync)
		return ast.NewSetRange(pos, low, high)
	}
	return low
}

// parseDesignator parses an identifier followed by zero or more of:
// subscript, field selection, dereference, or call — per the GLOSSARY's
// definition of "designator".
func (p *Parser) parseDesignator(resync TokenSet) ast.Node {
	node := p.qualident(resync)
	for {
		pos := p.pos()
		switch p.cur().Kind {
		case lex.LBracket:
			p.lx.Advance()
			index := p.parseExpr(resync)
			p.matchToken(lex.RBracket, resync)
			node = ast.NewSubscript(pos, node, index)
		case lex.Caret:
			p.lx.Advance()
			node = ast.NewDeref(pos, node)
		case lex.Period:
			p.lx.Advance()
			field := p.ident(resync)
			node = ast.NewFieldAccess(pos, node, field)
		case lex.LParen:
			args := p.parseArgList(resync)
			node = ast.NewCall(pos, node, args)
		default:
			return node
		}
	}
}
