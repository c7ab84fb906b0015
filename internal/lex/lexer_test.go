package lex

import (
	"strings"
	"testing"

	"github.com/dekarrin/m2comp/internal/diag"
	"github.com/dekarrin/m2comp/internal/intern"
	"github.com/dekarrin/m2comp/internal/source"
	"github.com/dekarrin/m2comp/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLexer(t *testing.T, src string, opts Options) (*Lexer, *diag.Sink) {
	t.Helper()
	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader(src), "test.mod")
	return New(rd, pool, sink, opts), sink
}

func collectKinds(lx *Lexer) []Kind {
	var kinds []Kind
	for {
		tok := lx.Current()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == EndOfFile {
			break
		}
		lx.Advance()
	}
	return kinds
}

func Test_Lexer_reservedWordsAndIdentifiers(t *testing.T) {
	assert := assert.New(t)

	lx, sink := newLexer(t, "MODULE Foo;", Options{})
	kinds := collectKinds(lx)

	assert.Equal([]Kind{MODULE, Identifier, Semicolon, EndOfFile}, kinds)
	assert.Equal(0, sink.ErrorCount())
}

func Test_Lexer_lineCommentSkipped(t *testing.T) {
	assert := assert.New(t)

	lx, _ := newLexer(t, "VAR ! trailing comment\nx: INTEGER;", Options{})
	kinds := collectKinds(lx)

	assert.Equal(VAR, kinds[0])
	assert.Equal(Identifier, kinds[1])
}

func Test_Lexer_nestedBlockComment(t *testing.T) {
	assert := assert.New(t)

	lx, sink := newLexer(t, "BEGIN (* outer (* inner *) still-outer *) END", Options{})
	kinds := collectKinds(lx)

	assert.Equal([]Kind{BEGIN, END, EndOfFile}, kinds)
	assert.Equal(0, sink.ErrorCount())
}

func Test_Lexer_unterminatedBlockCommentIsFatal(t *testing.T) {
	assert := assert.New(t)

	lx, sink := newLexer(t, "BEGIN (* never closed", Options{})
	collectKinds(lx)

	assert.True(sink.HasFatal())
}

func Test_Lexer_disabledSection(t *testing.T) {
	assert := assert.New(t)

	src := "BEGIN\n?<\nTHIS IS IGNORED GARBAGE ~!@\n>?\nEND"
	lx, sink := newLexer(t, src, Options{})
	kinds := collectKinds(lx)

	assert.Equal([]Kind{BEGIN, END, EndOfFile}, kinds)
	assert.Equal(1, sink.Count(diag.Lexical))
}

func Test_Lexer_pragmaCapturedAsToken(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader("<* SOME PRAGMA *> END"), "test.mod")
	lx := New(rd, pool, sink, Options{})

	require.Equal(Pragma, lx.Current().Kind)
	assert.Equal("SOME PRAGMA", pool.String(lx.Current().Lexeme))
}

func Test_Lexer_pragmaUnterminatedIsFatal(t *testing.T) {
	assert := assert.New(t)

	lx, sink := newLexer(t, "<* never closed", Options{})
	collectKinds(lx)

	assert.True(sink.HasFatal())
}

func Test_Lexer_wholeNumberDecimalAndHex(t *testing.T) {
	assert := assert.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader("123 0xFF"), "test.mod")
	lx := New(rd, pool, sink, Options{})

	tok1 := lx.Current()
	assert.Equal(WholeNumber, tok1.Kind)
	assert.Equal("123", pool.String(tok1.Lexeme))

	lx.Advance()
	tok2 := lx.Current()
	assert.Equal(WholeNumber, tok2.Kind)
	assert.Equal("0xFF", pool.String(tok2.Lexeme))

	v, err := ParseWholeNumber(pool.String(tok2.Lexeme))
	assert.NoError(err)
	assert.EqualValues(255, v)
}

func Test_Lexer_charCodeLiteral(t *testing.T) {
	assert := assert.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader("0u41"), "test.mod")
	lx := New(rd, pool, sink, Options{})

	tok := lx.Current()
	assert.Equal(CharCode, tok.Kind)
	v, err := ParseCharCode(pool.String(tok.Lexeme))
	assert.NoError(err)
	assert.EqualValues(0x41, v)
}

func Test_Lexer_realNumberWithExponent(t *testing.T) {
	assert := assert.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader("3.14E+2"), "test.mod")
	lx := New(rd, pool, sink, Options{})

	tok := lx.Current()
	assert.Equal(RealNumber, tok.Kind)
	v, err := ParseRealNumber(pool.String(tok.Lexeme))
	assert.NoError(err)
	assert.InDelta(314.0, v, 0.0001)
}

func Test_Lexer_rangeDotDotNotMistakenForReal(t *testing.T) {
	assert := assert.New(t)

	lx, _ := newLexer(t, "1..10", Options{})
	kinds := collectKinds(lx)

	assert.Equal([]Kind{WholeNumber, DotDot, WholeNumber, EndOfFile}, kinds)
}

func Test_Lexer_malformedRealMissingExponentDigits(t *testing.T) {
	assert := assert.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader("1.5E"), "test.mod")
	lx := New(rd, pool, sink, Options{})

	tok := lx.Current()
	assert.Equal(MalformedReal, tok.Kind)
	assert.Equal(1, sink.Count(diag.Lexical))
}

func Test_Lexer_quotedString(t *testing.T) {
	assert := assert.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader(`"hello, world"`), "test.mod")
	lx := New(rd, pool, sink, Options{})

	tok := lx.Current()
	assert.Equal(QuotedString, tok.Kind)
	assert.Equal("hello, world", pool.String(tok.Lexeme))
}

func Test_Lexer_unterminatedStringIsMalformedNotFatal(t *testing.T) {
	assert := assert.New(t)

	lx, sink := newLexer(t, "\"no closing quote\nEND", Options{})
	tok := lx.Current()

	assert.Equal(MalformedString, tok.Kind)
	assert.Equal(1, sink.Count(diag.Lexical))
	assert.False(sink.HasFatal())
}

func Test_Lexer_stringEscapes(t *testing.T) {
	assert := assert.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader(`"a\nb\tc\\d"`), "test.mod")
	lx := New(rd, pool, sink, Options{EscapeTabNewline: true})

	tok := lx.Current()
	assert.Equal(QuotedString, tok.Kind)
	assert.Equal("a\nb\tc\\d", pool.String(tok.Lexeme))
}

func Test_Lexer_illegalEscapeSequenceReported(t *testing.T) {
	assert := assert.New(t)

	_, sink := newLexer(t, `"bad \q escape"`, Options{EscapeTabNewline: true})
	assert.Equal(1, sink.Count(diag.Lexical))
}

func Test_Lexer_operatorDispatch(t *testing.T) {
	assert := assert.New(t)

	lx, sink := newLexer(t, ":= :: <= >= == .. # ^ ~ @ $ |", Options{})
	kinds := collectKinds(lx)

	assert.Equal([]Kind{
		Assign, DoubleColon, LessEqual, GreaterEqual, SameType, DotDot,
		NotEqual, Caret, Tilde, AtSign, DollarSign, Bar, EndOfFile,
	}, kinds)
	assert.Equal(0, sink.ErrorCount())
}

func Test_Lexer_illegalCharacterReported(t *testing.T) {
	assert := assert.New(t)

	lx, sink := newLexer(t, "a % b", Options{})
	collectKinds(lx)

	assert.Equal(1, sink.Count(diag.Lexical))
}

func Test_Lexer_lowlineIdentifierCapability(t *testing.T) {
	assert := assert.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader("foo_bar"), "test.mod")
	lx := New(rd, pool, sink, Options{LowlineIdentifiers: true})

	tok := lx.Current()
	assert.Equal(Identifier, tok.Kind)
	assert.Equal("foo_bar", pool.String(tok.Lexeme))
}

func Test_Lexer_lowlineDisabledSplitsToken(t *testing.T) {
	assert := assert.New(t)

	lx, _ := newLexer(t, "foo_bar", Options{LowlineIdentifiers: false})
	kinds := collectKinds(lx)

	assert.Equal(Identifier, kinds[0])
}

func Test_Lexer_bindableLookupIsSeparateFromReserved(t *testing.T) {
	assert := assert.New(t)

	pool := intern.New(64)
	sink := diag.NewSink(0)
	rd := source.New(strings.NewReader("HIGH"), "test.mod")
	lx := New(rd, pool, sink, Options{})

	tok := lx.Current()
	assert.Equal(Identifier, tok.Kind, "bindable identifiers are not reserved words at scan time")

	kind, ok := lx.Bindable(tok.Lexeme)
	assert.True(ok)
	assert.Equal(HIGH, kind)
}

func Test_Lexer_peekDoesNotConsume(t *testing.T) {
	assert := assert.New(t)

	lx, _ := newLexer(t, "BEGIN END", Options{})

	assert.Equal(BEGIN, lx.Current().Kind)
	assert.Equal(END, lx.Peek().Kind)
	assert.Equal(BEGIN, lx.Current().Kind, "Peek must not advance Current")

	lx.Advance()
	assert.Equal(END, lx.Current().Kind)
}

func Test_Lexer_SetTrace_emitsPerTokenLines(t *testing.T) {
	assert := assert.New(t)

	lx, _ := newLexer(t, "BEGIN END", Options{})

	var buf strings.Builder
	lx.SetTrace(trace.NewSession(&buf, trace.LexerDebug))
	lx.Advance() // END; scan() runs under the attached session

	assert.Contains(buf.String(), "lexer")
	assert.Contains(buf.String(), END.String())
}

func Test_Lexer_SetTrace_silentWhenChannelDisabled(t *testing.T) {
	assert := assert.New(t)

	lx, _ := newLexer(t, "BEGIN END", Options{})

	var buf strings.Builder
	lx.SetTrace(trace.NewSession(&buf, trace.Verbose))
	lx.Advance()

	assert.Empty(buf.String())
}
