// Package diag implements the five-kind error taxonomy described in
// SPEC_FULL.md §2.1: lexical, syntactic, CLI, resource, and fatal-lexical
// diagnostics, collected into a per-compilation Sink rather than raised as
// exceptions.
package diag

import (
	"fmt"

	"github.com/dekarrin/m2comp/internal/source"
)

// Kind discriminates the five error categories from spec.md §7.
type Kind int

const (
	Lexical Kind = iota
	Syntactic
	CLI
	Resource
	FatalLexical
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	case CLI:
		return "CLI"
	case Resource:
		return "resource"
	case FatalLexical:
		return "fatal lexical"
	default:
		return "unknown"
	}
}

// Diagnostic is a single reported problem. Pos is the zero value when the
// diagnostic has no associated source position (CLI and some resource
// diagnostics).
type Diagnostic struct {
	Kind    Kind
	Pos     source.Position
	Offender string // offending lexeme or character, if any
	Message string
	wrapped error
}

func (d Diagnostic) Error() string {
	if d.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", d.Kind, d.Pos.Line, d.Pos.Column, d.Message)
}

// Unwrap gives the error that the Diagnostic wraps, if it wraps one.
func (d Diagnostic) Unwrap() error {
	return d.wrapped
}

// Lexical builds a non-fatal lexical diagnostic.
func Lexical(pos source.Position, offender, msg string) Diagnostic {
	return Diagnostic{Kind: Lexical, Pos: pos, Offender: offender, Message: msg}
}

// Lexicalf is Lexical with fmt.Sprintf-style formatting of msg.
func Lexicalf(pos source.Position, offender, format string, a ...interface{}) Diagnostic {
	return Lexical(pos, offender, fmt.Sprintf(format, a...))
}

// Syntactic builds a non-fatal syntactic diagnostic.
func Syntactic(pos source.Position, offender, msg string) Diagnostic {
	return Diagnostic{Kind: Syntactic, Pos: pos, Offender: offender, Message: msg}
}

// Syntacticf is Syntactic with fmt.Sprintf-style formatting of msg.
func Syntacticf(pos source.Position, offender, format string, a ...interface{}) Diagnostic {
	return Syntactic(pos, offender, fmt.Sprintf(format, a...))
}

// Fatal builds a fatal-lexical diagnostic (unterminated comment/pragma at
// end of file).
func Fatal(pos source.Position, msg string) Diagnostic {
	return Diagnostic{Kind: FatalLexical, Pos: pos, Message: msg}
}

// CLIError builds a CLI diagnostic (invalid option, duplicate option,
// missing source file, unmet option dependency).
func CLIError(msg string) Diagnostic {
	return Diagnostic{Kind: CLI, Message: msg}
}

// CLIErrorf is CLIError with fmt.Sprintf-style formatting.
func CLIErrorf(format string, a ...interface{}) Diagnostic {
	return CLIError(fmt.Sprintf(format, a...))
}

// WrapResource builds a resource diagnostic (file not found, access denied,
// allocation failure) that wraps an underlying error from the OS or runtime.
func WrapResource(err error, msg string) Diagnostic {
	return Diagnostic{Kind: Resource, Message: msg, wrapped: err}
}

// Sink accumulates diagnostics for one compilation and tracks error counts
// per kind, mirroring the teacher's pattern of threading an error counter
// through the lexer/parser rather than unwinding the stack on non-fatal
// errors (see internal/ictiobus/parse's icterrors.NewSyntaxErrorFromToken
// usage, which reports and lets the caller decide whether to continue).
type Sink struct {
	diags   []Diagnostic
	byKind  [5]int
	maxSize int // bound on total diagnostics retained; spec requires termination
}

// NewSink constructs a Sink. maxDiagnostics bounds the number of diagnostics
// retained (the "at most N errors... source size" bound from spec.md §4.6);
// zero means unbounded.
func NewSink(maxDiagnostics int) *Sink {
	return &Sink{maxSize: maxDiagnostics}
}

// Report records a diagnostic.
func (s *Sink) Report(d Diagnostic) {
	s.byKind[d.Kind]++
	if s.maxSize > 0 && len(s.diags) >= s.maxSize {
		return
	}
	s.diags = append(s.diags, d)
}

// Diagnostics returns all recorded diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diags
}

// Count returns the total number of diagnostics reported of the given kind.
func (s *Sink) Count(k Kind) int {
	return s.byKind[k]
}

// ErrorCount returns the total number of diagnostics reported across all
// kinds. The CLI surfaces this as the process's error count (spec.md §6).
func (s *Sink) ErrorCount() int {
	total := 0
	for _, c := range s.byKind {
		total += c
	}
	return total
}

// HasFatal reports whether a FatalLexical or Resource diagnostic has been
// recorded; callers use this to decide whether to abort the compilation.
func (s *Sink) HasFatal() bool {
	return s.byKind[FatalLexical] > 0 || s.byKind[Resource] > 0
}
