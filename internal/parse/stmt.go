package parse

import (
	"github.com/dekarrin/m2comp/internal/ast"
	"github.com/dekarrin/m2comp/internal/lex"
)

// parseStmtSeq parses a ';'-separated statement sequence until a token
// outside firstStmt/Semicolon is reached (typically END, ELSE, ELSIF,
// UNTIL, or end-of-file).
func (p *Parser) parseStmtSeq(resync TokenSet) ast.Node {
	pos := p.pos()
	var stmts []ast.Node
	for {
		if firstStmt.Has(p.cur().Kind) {
			stmts = append(stmts, p.parseStmt(resync))
		}
		if p.cur().Kind != lex.Semicolon {
			break
		}
		p.lx.Advance()
	}
	return ast.NewStmtList(pos, stmts...)
}

func (p *Parser) parseStmt(resync TokenSet) ast.Node {
	p.traceEnter("parseStmt")
	pos := p.pos()
	switch p.cur().Kind {
	case lex.COPY:
		return p.parseCopy(resync)
	case lex.RETURN:
		p.lx.Advance()
		if firstExpr.Has(p.cur().Kind) {
			return ast.NewReturn(pos, p.parseExpr(resync))
		}
		return ast.NewReturn(pos, ast.NewEmpty(pos))
	case lex.NEW:
		p.lx.Advance()
		return ast.NewNew(pos, p.parseDesignator(resync))
	case lex.RETAIN:
		p.lx.Advance()
		return ast.NewRetain(pos, p.parseDesignator(resync))
	case lex.RELEASE:
		p.lx.Advance()
		return ast.NewRelease(pos, p.parseDesignator(resync))
	case lex.IF:
		return p.parseIf(resync)
	case lex.CASE:
		return p.parseCase(resync)
	case lex.LOOP:
		p.lx.Advance()
		body := p.parseStmtSeq(resyncStmt)
		p.matchToken(lex.END, resync)
		return ast.NewLoop(pos, body)
	case lex.WHILE:
		p.lx.Advance()
		cond := p.parseExpr(resync)
		p.matchToken(lex.DO, resync)
		body := p.parseStmtSeq(resyncStmt)
		p.matchToken(lex.END, resync)
		return ast.NewWhile(pos, cond, body)
	case lex.REPEAT:
		p.lx.Advance()
		body := p.parseStmtSeq(resyncStmt)
		p.matchToken(lex.UNTIL, resync)
		cond := p.parseExpr(resync)
		return ast.NewRepeat(pos, body, cond)
	case lex.FOR:
		return p.parseFor(resync)
	case lex.EXIT:
		p.lx.Advance()
		return ast.NewExit(pos)
	case lex.READ:
		p.lx.Advance()
		return ast.NewRead(pos, p.parseDesignator(resync))
	case lex.WRITE:
		p.lx.Advance()
		return ast.NewWrite(pos, p.parseArgList(resync))
	case lex.NOP:
		p.lx.Advance()
		return ast.NewNop(pos)
	case lex.Identifier:
		return p.parseAssignOrCall(resync)
	default:
		p.matchSet(firstStmt, resync, "a statement")
		return ast.NewEmpty(pos)
	}
}

func (p *Parser) parseCopy(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.COPY, resync)
	p.matchToken(lex.LParen, resync)
	dst := p.parseDesignator(resync)
	p.matchToken(lex.Comma, resync)
	src := p.parseDesignator(resync)
	p.matchToken(lex.RParen, resync)
	return ast.NewCopy(pos, dst, src)
}

func (p *Parser) parseAssignOrCall(resync TokenSet) ast.Node {
	pos := p.pos()
	designator := p.parseDesignator(resync)
	if p.cur().Kind == lex.Assign {
		p.lx.Advance()
		rhs := p.parseExpr(resync)
		return ast.NewAssign(pos, designator, rhs)
	}
	if designator.Tag() == ast.Call {
		return designator
	}
	return ast.NewCall(pos, designator, ast.NewEmpty(pos))
}

func (p *Parser) parseArgList(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.LParen, resync)
	var args []ast.Node
	if p.cur().Kind != lex.RParen {
		args = append(args, p.parseExpr(resync))
		for p.cur().Kind == lex.Comma {
			p.lx.Advance()
			args = append(args, p.parseExpr(resync))
		}
	}
	p.matchToken(lex.RParen, resync)
	if len(args) == 0 {
		return ast.NewEmpty(pos)
	}
	return ast.NewArgList(pos, args...)
}

func (p *Parser) parseIf(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.IF, resync)
	cond := p.parseExpr(resyncStmt)
	p.matchToken(lex.THEN, resyncStmt)
	thenBranch := p.parseStmtSeq(resyncStmt)

	tail := p.parseIfTail(resync)
	return ast.NewIf(pos, cond, thenBranch, tail)
}

func (p *Parser) parseIfTail(resync TokenSet) ast.Node {
	pos := p.pos()
	switch p.cur().Kind {
	case lex.ELSIF:
		p.lx.Advance()
		cond := p.parseExpr(resyncStmt)
		p.matchToken(lex.THEN, resyncStmt)
		thenBranch := p.parseStmtSeq(resyncStmt)
		inner := p.parseIfTail(resync)
		return ast.NewElsif(pos, cond, thenBranch, inner)
	case lex.ELSE:
		p.lx.Advance()
		elseBranch := p.parseStmtSeq(resyncStmt)
		p.matchToken(lex.END, resync)
		return elseBranch
	default:
		p.matchToken(lex.END, resync)
		return ast.NewEmpty(pos)
	}
}

func (p *Parser) parseCase(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.CASE, resync)
	selector := p.parseExpr(resyncStmt)
	p.matchToken(lex.OF, resyncStmt)

	var arms []ast.Node
	arms = append(arms, p.parseCaseArm(resyncStmt))
	for p.cur().Kind == lex.Bar {
		p.lx.Advance()
		arms = append(arms, p.parseCaseArm(resyncStmt))
	}

	var elseTail ast.Node = ast.NewEmpty(pos)
	if p.cur().Kind == lex.ELSE {
		p.lx.Advance()
		elseTail = p.parseStmtSeq(resyncStmt)
	}
	p.matchToken(lex.END, resync)

	return ast.NewCase(pos, selector, ast.NewCaseLabelList(pos, arms...), elseTail)
}

func (p *Parser) parseCaseArm(resync TokenSet) ast.Node {
	pos := p.pos()
	var labels []ast.Node
	labels = append(labels, p.parseCaseLabel(resync))
	for p.cur().Kind == lex.Comma {
		p.lx.Advance()
		labels = append(labels, p.parseCaseLabel(resync))
	}
	p.matchToken(lex.Colon, resync)
	stmts := p.parseStmtSeq(resyncStmt)
	return ast.NewCaseLabel(pos, ast.NewCaseLabelList(pos, labels...), stmts)
}

func (p *Parser) parseCaseLabel(resync TokenSet) ast.Node {
	pos := p.pos()
	low := p.parseExpr(resync)
	if p.cur().Kind == lex.DotDot {
		p.lx.Advance()
		high := p.parseExpr(resync)
		return ast.NewSetRange(pos, low, high)
	}
	return low
}

func (p *Parser) parseFor(resync TokenSet) ast.Node {
	pos := p.pos()
	p.matchToken(lex.FOR, resyncStmt)
	control := p.ident(resyncStmt)

	if p.cur().Kind == lex.IN {
		p.lx.Advance()
		iterable := p.parseExpr(resyncStmt)
		middle := ast.NewIn(pos, control, iterable)
		p.matchToken(lex.DO, resyncStmt)
		body := p.parseStmtSeq(resyncStmt)
		p.matchToken(lex.END, resync)
		return ast.NewFor(pos, control, middle, body)
	}

	p.matchToken(lex.Assign, resyncStmt)
	low := p.parseExpr(resyncStmt)
	p.matchToken(lex.TO, resyncStmt)
	high := p.parseExpr(resyncStmt)

	var step ast.Node = ast.NewEmpty(pos)
	if p.cur().Kind == lex.BY {
		p.lx.Advance()
		step = p.parseExpr(resyncStmt)
	}
	middle := ast.NewForRange(pos, low, high, step)
	p.matchToken(lex.DO, resyncStmt)
	body := p.parseStmtSeq(resyncStmt)
	p.matchToken(lex.END, resync)
	return ast.NewFor(pos, control, middle, body)
}
