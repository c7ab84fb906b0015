// Package deplist implements the trimmed import-prelude walker: given a
// module's source, produce its ordered, deduplicated list of imported
// module names without building a full AST.
package deplist

import (
	"io"

	"github.com/dekarrin/m2comp/internal/diag"
	"github.com/dekarrin/m2comp/internal/intern"
	"github.com/dekarrin/m2comp/internal/lex"
	"github.com/dekarrin/m2comp/internal/source"
	"github.com/dekarrin/rezi"
)

// List is an ordered, append-if-absent-deduplicated sequence of imported
// module names.
type List struct {
	names []string
	seen  map[string]struct{}
}

// New builds an empty dependency list.
func New() *List {
	return &List{seen: make(map[string]struct{})}
}

// Append adds name to the list if it is not already present, preserving
// first-seen order.
func (l *List) Append(name string) {
	if _, ok := l.seen[name]; ok {
		return
	}
	l.seen[name] = struct{}{}
	l.names = append(l.names, name)
}

// Len reports the number of distinct names in the list.
func (l *List) Len() int {
	return len(l.names)
}

// At returns the name at index i.
func (l *List) At(i int) string {
	return l.names[i]
}

// Names returns the list's contents in order.
func (l *List) Names() []string {
	return l.names
}

// MarshalBinary encodes the list with rezi, for --graph-only output.
func (l *List) MarshalBinary() []byte {
	return rezi.EncBinary(l.names)
}

// Walk consumes r's import prelude only, stopping at the first token in the
// FIRST set of the post-import grammar (CONST, TYPE, VAR, PROCEDURE, TO,
// BEGIN, end-of-file), and returns the ordered, deduplicated list of
// imported module names it collected.
func Walk(r io.Reader, name string, pool *intern.Pool, sink *diag.Sink) *List {
	rd := source.New(r, name)
	lx := lex.New(rd, pool, sink, lex.Options{})
	deps := New()

	// Skip module header tokens up to the first import/stop token.
	for {
		switch lx.Current().Kind {
		case lex.IMPORT, lex.FROM:
			walkOneImport(lx, pool, deps)
			continue
		case lex.CONST, lex.TYPE, lex.VAR, lex.PROCEDURE, lex.TO, lex.BEGIN, lex.EndOfFile:
			return deps
		default:
			lx.Advance()
		}
	}
}

func walkOneImport(lx *lex.Lexer, pool *intern.Pool, deps *List) {
	if lx.Current().Kind == lex.FROM {
		lx.Advance()
		if lx.Current().Kind == lex.Identifier {
			deps.Append(pool.String(lx.Current().Lexeme))
			lx.Advance()
		}
	}

	if lx.Current().Kind != lex.IMPORT {
		return
	}
	lx.Advance()

	for {
		if lx.Current().Kind != lex.Identifier {
			break
		}
		deps.Append(pool.String(lx.Current().Lexeme))
		lx.Advance()

		if lx.Current().Kind == lex.Plus {
			lx.Advance()
		}
		if lx.Current().Kind != lex.Comma {
			break
		}
		lx.Advance()
	}

	if lx.Current().Kind == lex.Semicolon {
		lx.Advance()
	}
}
