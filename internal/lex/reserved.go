package lex

import "github.com/dekarrin/m2comp/internal/intern"

// reservedWordNames backs Kind.String() for the reserved-word range.
var reservedWordNames = map[Kind]string{
	AND: "AND", ARRAY: "ARRAY", BEGIN: "BEGIN", BY: "BY", CASE: "CASE",
	CONST: "CONST", DEFINITION: "DEFINITION", DIV: "DIV", DO: "DO",
	ELSE: "ELSE", ELSIF: "ELSIF", END: "END", EXIT: "EXIT", EXPORT: "EXPORT",
	FOR: "FOR", FROM: "FROM", IF: "IF", IMPLEMENTATION: "IMPLEMENTATION",
	IMPORT: "IMPORT", IN: "IN", LOOP: "LOOP", MOD: "MOD", MODULE: "MODULE",
	NEW: "NEW", NOP: "NOP", NOT: "NOT", OF: "OF", OPAQUE: "OPAQUE", OR: "OR",
	POINTER: "POINTER", PROCEDURE: "PROCEDURE", PROGRAM: "PROGRAM",
	QUALIFIED: "QUALIFIED", READ: "READ", RECORD: "RECORD",
	RELEASE: "RELEASE", REPEAT: "REPEAT", RETAIN: "RETAIN", RETURN: "RETURN",
	SET: "SET", THEN: "THEN", TO: "TO", TODO: "TODO", TYPE: "TYPE",
	UNTIL: "UNTIL", VAR: "VAR", WHILE: "WHILE", WRITE: "WRITE", COPY: "COPY",
}

// reservedEntry pairs a reserved word's pre-interned handle with its token
// kind. Recognition is by handle equality only, never by re-comparing bytes:
// once a candidate lexeme has been interned, the reserved-word table lookup
// is a pointer-cheap comparison against this table's handle, not a string
// comparison (spec.md §4.3, §9 "Interned strings and pointer equality").
type reservedEntry struct {
	handle intern.Handle
	kind   Kind
}

// reservedTable buckets reserved-word entries first by lexeme length, since
// that's nearly free to compute and prunes the vast majority of candidates
// before a single handle comparison is needed.
type reservedTable struct {
	byLength map[int][]reservedEntry
}

func buildReservedTable(pool *intern.Pool) *reservedTable {
	t := &reservedTable{byLength: make(map[int][]reservedEntry)}
	for kind, name := range reservedWordNames {
		h, err := pool.InternString(name)
		if err != nil {
			panic(err) // string pool allocation failure is unrecoverable at startup
		}
		t.byLength[len(name)] = append(t.byLength[len(name)], reservedEntry{handle: h, kind: kind})
	}
	return t
}

// Lookup returns the reserved-word kind for the lexeme named by h, or
// (Identifier, false) when h does not name a reserved spelling. candidateLen
// must be the byte length of the lexeme h names; the caller already has it
// from the scan and passing it avoids a pool round-trip just to bucket.
func (t *reservedTable) Lookup(h intern.Handle, candidateLen int) (Kind, bool) {
	for _, e := range t.byLength[candidateLen] {
		if e.handle == h {
			// NB: one branch of a classic length+prefix dispatch used to
			// return TOKEN_LOOP for the spelling "COPY" — a known
			// transcription slip in the reference recognizer. This table is
			// built directly from reservedWordNames, where COPY already
			// maps to the COPY kind, so that slip cannot reappear here.
			return e.kind, true
		}
	}
	return Identifier, false
}

// bindableNames backs Kind.String() for the bindable-identifier range.
var bindableNames = map[Kind]string{
	ALLOC: "ALLOC", APPEND: "APPEND", ASH: "ASH", CAP: "CAP", CHR: "CHR",
	DISPOSE: "DISPOSE", FIRST: "FIRST", HALT: "HALT", HIGH: "HIGH",
	LAST: "LAST", LENGTH: "LENGTH", MAX: "MAX", MIN: "MIN",
	NEWPROC: "NEWPROC", NIL: "NIL", ODD: "ODD", ORD: "ORD", SIZE: "SIZE",
	STORE: "STORE", TRUNC: "TRUNC", VAL: "VAL",
}

// bindableTable is the secondary length-dispatched table for the ~21
// bindable built-in identifiers (ALLOC, APPEND, FIRST, STORE, ...). These are
// contextually bindable, not reserved: ordinary identifier lookup never
// consults this table. Only the parser, through Lexer.Bindable, asks whether
// a given identifier handle also names a bindable (parsePrimary does so to
// recognize NIL).
type bindableTable struct {
	byLength map[int][]reservedEntry
}

func buildBindableTable(pool *intern.Pool) *bindableTable {
	t := &bindableTable{byLength: make(map[int][]reservedEntry)}
	for kind, name := range bindableNames {
		h, err := pool.InternString(name)
		if err != nil {
			panic(err)
		}
		t.byLength[len(name)] = append(t.byLength[len(name)], reservedEntry{handle: h, kind: kind})
	}
	return t
}

// Lookup returns the bindable kind for the lexeme named by h, or
// (Identifier, false) if h is not a bindable spelling.
func (t *bindableTable) Lookup(h intern.Handle, candidateLen int) (Kind, bool) {
	for _, e := range t.byLength[candidateLen] {
		if e.handle == h {
			return e.kind, true
		}
	}
	return Identifier, false
}
