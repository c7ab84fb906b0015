package parse

import (
	"strings"
	"testing"

	"github.com/dekarrin/m2comp/internal/ast"
	"github.com/dekarrin/m2comp/internal/diag"
	"github.com/dekarrin/m2comp/internal/intern"
	"github.com/dekarrin/m2comp/internal/lex"
	"github.com/dekarrin/m2comp/internal/source"
	"github.com/dekarrin/m2comp/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, src string) (*Parser, *diag.Sink, *intern.Pool) {
	t.Helper()
	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader(src), "test.mod")
	lx := lex.New(rd, pool, sink, lex.Options{})
	return New(lx, pool, sink), sink, pool
}

func Test_MinimalDefinitionModule(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	p, sink, _ := newParser(t, "DEFINITION MODULE A; END A.")
	unit := p.ParseCompilationUnit()

	require.Equal(ast.DefinitionModule, unit.Tag())
	fixed := unit.AsFixed()
	require.Equal("A", fixed.Kids[0].AsLeaf().Value)
	assert.Equal(ast.Empty, fixed.Kids[1].Tag(), "no imports")
	assert.Equal(ast.Empty, fixed.Kids[2].Tag(), "no defs")
	assert.Equal(0, sink.ErrorCount())
}

func Test_ImportWithReexport(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	p, sink, pool := newParser(t, "DEFINITION MODULE X; IMPORT A, B+, C; END X.")
	unit := p.ParseCompilationUnit()

	imports := unit.AsFixed().Kids[1]
	require.Equal(ast.ImportList, imports.Tag())
	importClause := imports.AsList().Items[0]
	require.Equal(ast.Import, importClause.Tag())

	items := importClause.AsList().Items
	// items[0] is the FROM-module slot (Empty here); names follow.
	require.Equal(ast.Empty, items[0].Tag())
	assert.Equal("A", items[1].AsLeaf().Value)
	require.Equal(ast.Reexport, items[2].Tag())
	assert.Equal("B", items[2].AsUnary().Child.AsLeaf().Value)
	assert.Equal("C", items[3].AsLeaf().Value)
	assert.Equal(0, sink.ErrorCount())
	_ = pool
}

func Test_ExpressionPrecedence_additiveBeforeMultiplicative(t *testing.T) {
	require := require.New(t)

	p, sink, _ := newParser(t, "1 + 2 * 3")
	tree := p.parseExpr(resyncStmt)

	require.Equal(ast.PlusOp, tree.Tag())
	bin := tree.AsBinary()
	require.Equal(ast.IntLiteral, bin.Left.Tag())
	require.Equal(ast.AsteriskOp, bin.Right.Tag())
	require.Equal(0, sink.ErrorCount())
}

func Test_ExpressionPrecedence_multiplicativeThenAdditive(t *testing.T) {
	require := require.New(t)

	p, _, _ := newParser(t, "1 * 2 + 3")
	tree := p.parseExpr(resyncStmt)

	require.Equal(ast.PlusOp, tree.Tag())
	bin := tree.AsBinary()
	require.Equal(ast.AsteriskOp, bin.Left.Tag())
	require.Equal(ast.IntLiteral, bin.Right.Tag())
}

func Test_ForWithIterable(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	p, sink, _ := newParser(t, "FOR x IN s DO NOP END")
	stmt := p.parseStmt(resyncStmt)

	require.Equal(ast.For, stmt.Tag())
	fixed := stmt.AsFixed()
	require.Len(fixed.Kids, 3)
	require.Equal(ast.InOp, fixed.Kids[1].Tag(), "iterator form's middle child is IN-shaped")
	require.Equal(ast.Nop, fixed.Kids[2].AsList().Items[0].Tag())
	assert.Equal(0, sink.ErrorCount())
}

func Test_ForCountedForm(t *testing.T) {
	require := require.New(t)

	p, _, _ := newParser(t, "FOR i := 1 TO 10 DO NOP END")
	stmt := p.parseStmt(resyncStmt)

	require.Equal(ast.For, stmt.Tag())
	fixed := stmt.AsFixed()
	require.Len(fixed.Kids, 3)
	require.Equal(ast.ForRange, fixed.Kids[1].Tag())
}

func Test_UnterminatedStringRecovers(t *testing.T) {
	assert := assert.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader("\"abc\nEND A."), "test.mod")
	lx := lex.New(rd, pool, sink, lex.Options{})

	tok := lx.Current()
	assert.Equal(lex.MalformedString, tok.Kind)
	assert.Equal(1, sink.Count(diag.Lexical))
}

func Test_NestedBlockComments_firstRealTokenIsIdentifier(t *testing.T) {
	assert := assert.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader("(* a (* b *) c *) IDENT"), "test.mod")
	lx := lex.New(rd, pool, sink, lex.Options{})

	tok := lx.Current()
	assert.Equal(lex.Identifier, tok.Kind)
	assert.Equal("IDENT", pool.String(tok.Lexeme))
	assert.Equal(0, sink.ErrorCount())
}

func Test_IfElsifElse(t *testing.T) {
	require := require.New(t)

	p, sink, _ := newParser(t, "IF a THEN NOP ELSIF b THEN NOP ELSE NOP END")
	stmt := p.parseStmt(resyncStmt)

	require.Equal(ast.If, stmt.Tag())
	tail := stmt.AsFixed().Kids[2]
	require.Equal(ast.If, tail.Tag(), "elsif chains through nested If nodes")
	innerTail := tail.AsFixed().Kids[2]
	require.Equal(ast.StmtList, innerTail.Tag())
	require.Equal(0, sink.ErrorCount())
}

func Test_CaseWithElse_barSeparatedArms(t *testing.T) {
	require := require.New(t)

	p, sink, _ := newParser(t, "CASE x OF 1: NOP | 2..3: NOP ELSE NOP END")
	stmt := p.parseStmt(resyncStmt)

	require.Equal(ast.Case, stmt.Tag())
	fixed := stmt.AsFixed()
	require.Len(fixed.Kids, 3)
	arms := fixed.Kids[1].AsList()
	require.Len(arms.Items, 2)
	require.Equal(0, sink.ErrorCount())
}

func Test_Parser_SetTrace_emitsProductionEntries(t *testing.T) {
	assert := assert.New(t)

	p, _, _ := newParser(t, "x := 1")

	var buf strings.Builder
	p.SetTrace(trace.NewSession(&buf, trace.ParserDebug))
	p.parseStmt(resyncStmt)

	assert.Contains(buf.String(), "parseStmt")
	assert.Contains(buf.String(), "parseExpr")
}

func Test_Parser_SetTrace_silentWhenChannelDisabled(t *testing.T) {
	assert := assert.New(t)

	p, _, _ := newParser(t, "x := 1")

	var buf strings.Builder
	p.SetTrace(trace.NewSession(&buf, trace.Verbose))
	p.parseStmt(resyncStmt)

	assert.Empty(buf.String())
}
