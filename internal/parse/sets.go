package parse

import "github.com/dekarrin/m2comp/internal/lex"

// TokenSet is a membership set over token kinds, used both as a FIRST set
// (matchSet) and as a resynchronization target (matchToken/resync). Modeled
// as a map rather than a literal bitset: the teacher's own grammar/parse
// packages (internal/ictiobus/parse, internal/util's Set family) represent
// token and item sets the same way, trading a little memory for O(1)
// membership without hand-rolled bit arithmetic over ~100 kinds.
type TokenSet map[lex.Kind]struct{}

func newTokenSet(kinds ...lex.Kind) TokenSet {
	s := make(TokenSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is a member of s.
func (s TokenSet) Has(k lex.Kind) bool {
	_, ok := s[k]
	return ok
}

// Union returns a new set containing the members of s and all of others.
func (s TokenSet) Union(others ...TokenSet) TokenSet {
	out := make(TokenSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	for _, o := range others {
		for k := range o {
			out[k] = struct{}{}
		}
	}
	return out
}

// Resync sets, one per production that needs error recovery, derived from
// the grammar's FOLLOW relation per SPEC_FULL.md/spec.md §4.6.
var (
	resyncImport = newTokenSet(
		lex.CONST, lex.TYPE, lex.VAR, lex.PROCEDURE, lex.TO, lex.BEGIN,
		lex.END, lex.EndOfFile,
	)
	resyncDef = newTokenSet(
		lex.CONST, lex.TYPE, lex.VAR, lex.PROCEDURE, lex.BEGIN, lex.END,
		lex.EndOfFile,
	)
	resyncStmt = newTokenSet(
		lex.Semicolon, lex.END, lex.ELSE, lex.ELSIF, lex.UNTIL,
		lex.EndOfFile,
	)
	resyncModule = newTokenSet(lex.Period, lex.EndOfFile)

	firstStmt = newTokenSet(
		lex.Identifier, lex.COPY, lex.RETURN, lex.NEW, lex.RETAIN,
		lex.RELEASE, lex.IF, lex.CASE, lex.LOOP, lex.WHILE, lex.REPEAT,
		lex.FOR, lex.EXIT, lex.READ, lex.WRITE, lex.NOP,
	)

	firstType = newTokenSet(
		lex.Identifier, lex.LBracket, lex.ARRAY, lex.SET, lex.RECORD,
		lex.POINTER, lex.PROCEDURE, lex.OPAQUE,
	)

	// NIL is recognized as a bindable identifier, not a distinct token kind;
	// Identifier already covers it here (see parsePrimary's bindable check).
	firstExpr = newTokenSet(
		lex.Identifier, lex.WholeNumber, lex.RealNumber, lex.CharCode,
		lex.QuotedString, lex.NOT, lex.Minus, lex.LParen,
		lex.LBrace,
	)
)
