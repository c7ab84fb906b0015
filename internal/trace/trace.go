// Package trace implements the gated --verbose/--lexer-debug/--parser-debug
// tracing facility: a per-compilation Session carrying a correlation ID,
// writing labeled trace lines only for the channels its Settings enabled.
package trace

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Channel identifies one of the independently gated trace channels.
type Channel int

const (
	Verbose Channel = iota
	LexerDebug
	ParserDebug
)

func (c Channel) String() string {
	switch c {
	case Verbose:
		return "verbose"
	case LexerDebug:
		return "lexer"
	case ParserDebug:
		return "parser"
	default:
		return "?"
	}
}

// Session is one compilation's trace sink, tagged with a random correlation
// ID so interleaved multi-file driver runs can be told apart in shared log
// output, the same role uuid.NewRandom plays for the teacher's session and
// registration IDs.
type Session struct {
	ID      uuid.UUID
	w       io.Writer
	enabled map[Channel]bool
}

// NewSession builds a Session writing to w, with the given channels enabled.
func NewSession(w io.Writer, channels ...Channel) *Session {
	s := &Session{w: w, enabled: make(map[Channel]bool)}
	if id, err := uuid.NewRandom(); err == nil {
		s.ID = id
	}
	for _, c := range channels {
		s.enabled[c] = true
	}
	return s
}

// Enabled reports whether c is gated on for this session.
func (s *Session) Enabled(c Channel) bool {
	return s != nil && s.enabled[c]
}

// Tracef writes a labeled trace line to channel c if it is enabled.
func (s *Session) Tracef(c Channel, format string, a ...interface{}) {
	if !s.Enabled(c) {
		return
	}
	fmt.Fprintf(s.w, "[%s %s] %s\n", s.ID.String()[:8], c, fmt.Sprintf(format, a...))
}
