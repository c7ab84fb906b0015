package lex

import (
	"strconv"
	"strings"

	"github.com/dekarrin/m2comp/internal/diag"
	"github.com/dekarrin/m2comp/internal/intern"
	"github.com/dekarrin/m2comp/internal/source"
	"github.com/dekarrin/m2comp/internal/trace"
)

// Options gates the lexer's optional capabilities (spec.md §4.4).
type Options struct {
	DollarIdentifiers  bool
	LowlineIdentifiers bool
	EscapeTabNewline   bool
}

// Lexer is a hand-written, lookahead-driven scanner. It materializes only
// the current token plus a single one-token peek, matching spec.md §3's
// "only the current token is materialized" contract.
type Lexer struct {
	rd       *source.Reader
	pool     *intern.Pool
	reserved *reservedTable
	bindable *bindableTable
	sink     *diag.Sink
	opts     Options
	tr       *trace.Session

	cur    Token
	peeked *Token
}

// New constructs a Lexer over rd, priming its first token. pool must already
// be initialized; reserved/bindable tables are built from it once here
// rather than per-token.
func New(rd *source.Reader, pool *intern.Pool, sink *diag.Sink, opts Options) *Lexer {
	lx := &Lexer{
		rd:       rd,
		pool:     pool,
		reserved: buildReservedTable(pool),
		bindable: buildBindableTable(pool),
		sink:     sink,
		opts:     opts,
	}
	lx.cur = lx.scan()
	return lx
}

// SetTrace attaches a trace session for --lexer-debug output.
func (lx *Lexer) SetTrace(tr *trace.Session) {
	lx.tr = tr
}

// Bindable reports whether h names one of the bindable built-in identifiers,
// returning its Kind if so. Called only by the parser (parsePrimary uses it
// to recognize NIL); ordinary token production never consults this.
func (lx *Lexer) Bindable(h intern.Handle) (Kind, bool) {
	return lx.bindable.Lookup(h, lx.pool.Length(h))
}

// Current returns the current token without consuming it (next_sym).
func (lx *Lexer) Current() Token {
	return lx.cur
}

// Peek returns the token after Current without consuming either.
func (lx *Lexer) Peek() Token {
	if lx.peeked == nil {
		t := lx.scan()
		lx.peeked = &t
	}
	return *lx.peeked
}

// Advance consumes the current token and returns the new current token
// (read_sym).
func (lx *Lexer) Advance() Token {
	if lx.peeked != nil {
		lx.cur = *lx.peeked
		lx.peeked = nil
	} else {
		lx.cur = lx.scan()
	}
	return lx.cur
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// scan consumes trivia (whitespace, comments, disabled sections) and then
// produces exactly one token.
func (lx *Lexer) scan() (tok Token) {
	defer func() {
		lx.tr.Tracef(trace.LexerDebug, "%s at %d:%d", tok.Kind, tok.Position.Line, tok.Position.Column)
	}()

	for lx.skipTrivia() {
	}

	lx.rd.Mark()
	pos := lx.rd.Pos()
	c := lx.rd.Current()

	switch {
	case c == source.EOT:
		tok = Token{Kind: EndOfFile, Position: pos}
	case isLetter(c):
		tok = lx.scanIdentifier(pos)
	case isDigit(c):
		tok = lx.scanNumber(pos)
	case c == '"' || c == '\'':
		tok = lx.scanString(pos, c)
	case c == '<' && lx.rd.Lookahead2() == '*':
		tok = lx.scanPragma(pos)
	default:
		tok = lx.scanOperator(pos)
	}
	return
}

// skipTrivia consumes one run of whitespace, or one comment, or one disabled
// section, and reports whether anything was consumed (callers loop until
// false to skip runs of mixed trivia).
func (lx *Lexer) skipTrivia() bool {
	consumedAny := false

	for {
		c := lx.rd.Current()
		if c == ' ' || c == '\t' || c == '\n' {
			lx.rd.Consume()
			consumedAny = true
			continue
		}
		break
	}

	c := lx.rd.Current()
	switch {
	case c == '!':
		lx.skipLineComment()
		return true
	case c == '(' && lx.rd.Lookahead2() == '*':
		lx.skipBlockComment()
		return true
	case c == '?' && lx.rd.Lookahead2() == '<' && lx.rd.Pos().Column == 1:
		lx.skipDisabledSection()
		return true
	}

	return consumedAny
}

func (lx *Lexer) skipLineComment() {
	lx.rd.ConsumeSkip() // '!'
	for lx.rd.Current() != '\n' && lx.rd.Current() != source.EOT {
		lx.rd.ConsumeSkip()
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.rd.Pos()
	lx.rd.ConsumeSkip() // '('
	lx.rd.ConsumeSkip() // '*'
	depth := 1
	for depth > 0 {
		if lx.rd.Current() == source.EOT {
			lx.sink.Report(diag.Fatal(start, "end of file inside block comment"))
			return
		}
		if lx.rd.Current() == '(' && lx.rd.Lookahead2() == '*' {
			lx.rd.ConsumeSkip()
			lx.rd.ConsumeSkip()
			depth++
			continue
		}
		if lx.rd.Current() == '*' && lx.rd.Lookahead2() == ')' {
			lx.rd.ConsumeSkip()
			lx.rd.ConsumeSkip()
			depth--
			continue
		}
		lx.rd.ConsumeSkip()
	}
}

func (lx *Lexer) skipDisabledSection() {
	startPos := lx.rd.Pos()
	lx.rd.ConsumeSkip() // '?'
	lx.rd.ConsumeSkip() // '<'
	for {
		c := lx.rd.Current()
		if c == source.EOT {
			break
		}
		if c == '>' && lx.rd.Lookahead2() == '?' && lx.rd.Pos().Column == 1 {
			lx.rd.ConsumeSkip()
			lx.rd.ConsumeSkip()
			break
		}
		lx.rd.ConsumeSkip()
	}
	endPos := lx.rd.Pos()
	lx.sink.Report(diag.Lexicalf(startPos, "?<", "disabled code section, lines %d-%d", startPos.Line, endPos.Line))
}

func (lx *Lexer) scanIdentifier(pos source.Position) Token {
	for {
		c := lx.rd.Current()
		if isLetter(c) || isDigit(c) {
			lx.rd.Consume()
			continue
		}
		if lx.opts.LowlineIdentifiers && c == '_' && isAlnum(lx.rd.Lookahead2()) {
			lx.rd.Consume()
			continue
		}
		if lx.opts.DollarIdentifiers && c == '$' && isAlnum(lx.rd.Lookahead2()) {
			lx.rd.Consume()
			continue
		}
		break
	}

	text, _ := lx.rd.Lexeme()
	h, err := lx.pool.InternString(text)
	if err != nil {
		lx.sink.Report(diag.WrapResource(err, "interning identifier"))
		return Token{Kind: Unknown, Position: pos}
	}

	if kind, ok := lx.reserved.Lookup(h, len(text)); ok {
		return Token{Kind: kind, Lexeme: h, Position: pos}
	}
	return Token{Kind: Identifier, Lexeme: h, Position: pos}
}

func isAlnum(r rune) bool {
	return isLetter(r) || isDigit(r)
}

func (lx *Lexer) scanNumber(pos source.Position) Token {
	if lx.rd.Current() == '0' && (lx.rd.Lookahead2() == 'x' || lx.rd.Lookahead2() == 'X') {
		lx.rd.Consume() // '0'
		lx.rd.Consume() // 'x'
		for isHexDigit(lx.rd.Current()) {
			lx.rd.Consume()
		}
		return lx.internNumeric(pos, WholeNumber)
	}
	if lx.rd.Current() == '0' && (lx.rd.Lookahead2() == 'u' || lx.rd.Lookahead2() == 'U') {
		lx.rd.Consume() // '0'
		lx.rd.Consume() // 'u'
		for isHexDigit(lx.rd.Current()) {
			lx.rd.Consume()
		}
		return lx.internNumeric(pos, CharCode)
	}

	for isDigit(lx.rd.Current()) {
		lx.rd.Consume()
	}

	if lx.rd.Current() == '.' && lx.rd.Lookahead2() != '.' {
		lx.rd.Consume() // '.'
		for isDigit(lx.rd.Current()) {
			lx.rd.Consume()
		}

		if lx.rd.Current() == 'E' || lx.rd.Current() == 'e' {
			lx.rd.Consume()
			if lx.rd.Current() == '+' || lx.rd.Current() == '-' {
				lx.rd.Consume()
			}
			digits := 0
			for isDigit(lx.rd.Current()) {
				lx.rd.Consume()
				digits++
			}
			if digits == 0 {
				return lx.internNumeric(pos, MalformedReal)
			}
		}
		return lx.internNumeric(pos, RealNumber)
	}

	return lx.internNumeric(pos, WholeNumber)
}

func (lx *Lexer) internNumeric(pos source.Position, kind Kind) Token {
	text, _ := lx.rd.Lexeme()
	h, err := lx.pool.InternString(text)
	if err != nil {
		lx.sink.Report(diag.WrapResource(err, "interning numeric literal"))
		return Token{Kind: Unknown, Position: pos}
	}
	if kind == MalformedReal {
		lx.sink.Report(diag.Lexical(pos, text, "malformed real literal: missing exponent digits"))
	}
	return Token{Kind: kind, Lexeme: h, Position: pos}
}

func (lx *Lexer) scanString(pos source.Position, delim rune) Token {
	lx.rd.Consume() // opening delimiter

	var sb strings.Builder
	malformed := false
	for {
		c := lx.rd.Current()
		if c == delim {
			lx.rd.Consume() // closing delimiter
			break
		}
		if c == '\n' || c == source.EOT {
			malformed = true
			break
		}
		if c == '\\' && lx.opts.EscapeTabNewline {
			la := lx.rd.Lookahead2()
			switch la {
			case 'n':
				sb.WriteRune('\n')
				lx.rd.Consume()
				lx.rd.Consume()
				continue
			case 't':
				sb.WriteRune('\t')
				lx.rd.Consume()
				lx.rd.Consume()
				continue
			case '\\':
				sb.WriteRune('\\')
				lx.rd.Consume()
				lx.rd.Consume()
				continue
			default:
				lx.sink.Report(diag.Lexicalf(lx.rd.Pos(), string(la), "illegal escape sequence"))
				lx.rd.Consume()
				continue
			}
		}
		sb.WriteRune(c)
		lx.rd.Consume()
	}

	if malformed {
		text, _ := lx.rd.Lexeme()
		h, err := lx.pool.InternString(text)
		if err != nil {
			lx.sink.Report(diag.WrapResource(err, "interning malformed string literal"))
			return Token{Kind: Unknown, Position: pos}
		}
		lx.sink.Report(diag.Lexical(pos, text, "unterminated string literal"))
		return Token{Kind: MalformedString, Lexeme: h, Position: pos}
	}

	h, err := lx.pool.InternString(sb.String())
	if err != nil {
		lx.sink.Report(diag.WrapResource(err, "interning string literal"))
		return Token{Kind: Unknown, Position: pos}
	}
	return Token{Kind: QuotedString, Lexeme: h, Position: pos}
}

func (lx *Lexer) scanPragma(pos source.Position) Token {
	lx.rd.ConsumeSkip() // '<'
	lx.rd.ConsumeSkip() // '*'

	var sb strings.Builder
	for {
		c := lx.rd.Current()
		if c == source.EOT {
			lx.sink.Report(diag.Fatal(pos, "end of file inside pragma"))
			break
		}
		if c == '*' && lx.rd.Lookahead2() == '>' {
			lx.rd.ConsumeSkip()
			lx.rd.ConsumeSkip()
			break
		}
		sb.WriteRune(c)
		lx.rd.ConsumeSkip()
	}

	h, err := lx.pool.InternString(strings.TrimSpace(sb.String()))
	if err != nil {
		lx.sink.Report(diag.WrapResource(err, "interning pragma"))
		return Token{Kind: Unknown, Position: pos}
	}
	return Token{Kind: Pragma, Lexeme: h, Position: pos}
}

// two-character operator dispatch table; checked before the single-character
// fallback so e.g. ":=" is not mistakenly split into ":" then "=".
var twoCharOps = map[[2]rune]Kind{
	{':', '='}: Assign,
	{':', ':'}: DoubleColon,
	{'<', '='}: LessEqual,
	{'>', '='}: GreaterEqual,
	{'=', '='}: SameType,
	{'.', '.'}: DotDot,
}

var oneCharOps = map[rune]Kind{
	'+': Plus, '-': Minus, '*': Asterisk, '/': Slash, '\\': Backslash,
	'&': Ampersand, '=': Equal, '#': NotEqual, '<': Less, '>': Greater,
	':': Colon, ';': Semicolon, ',': Comma, '.': Period,
	'(': LParen, ')': RParen, '[': LBracket, ']': RBracket,
	'{': LBrace, '}': RBrace, '^': Caret, '~': Tilde, '@': AtSign,
	'$': DollarSign, '|': Bar,
}

func (lx *Lexer) scanOperator(pos source.Position) Token {
	c := lx.rd.Current()
	n := lx.rd.Lookahead2()

	if kind, ok := twoCharOps[[2]rune{c, n}]; ok {
		lx.rd.Consume()
		lx.rd.Consume()
		return Token{Kind: kind, Position: pos}
	}

	if kind, ok := oneCharOps[c]; ok {
		lx.rd.Consume()
		return Token{Kind: kind, Position: pos}
	}

	text := string(c)
	lx.sink.Report(diag.Lexicalf(pos, text, "illegal character %q", c))
	lx.rd.Consume()
	return Token{Kind: Unknown, Position: pos}
}

// ParseWholeNumber converts the lexeme of a WholeNumber token (decimal or
// 0x-prefixed hex) to its numeric value. Exposed for the AST builder layer
// so literal nodes can carry an already-parsed value rather than a string.
func ParseWholeNumber(text string) (int64, error) {
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return strconv.ParseInt(text[2:], 16, 64)
	}
	return strconv.ParseInt(text, 10, 64)
}

// ParseCharCode converts the lexeme of a CharCode token (0u-prefixed) to its
// numeric value.
func ParseCharCode(text string) (int64, error) {
	if len(text) > 1 && (text[1] == 'u' || text[1] == 'U') {
		return strconv.ParseInt(text[2:], 16, 64)
	}
	return strconv.ParseInt(text, 10, 64)
}

// ParseRealNumber converts the lexeme of a RealNumber token to its value.
func ParseRealNumber(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
