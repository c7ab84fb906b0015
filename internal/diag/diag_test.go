package diag

import (
	"errors"
	"testing"

	"github.com/dekarrin/m2comp/internal/source"
	"github.com/stretchr/testify/assert"
)

func Test_Sink_countsByKind(t *testing.T) {
	assert := assert.New(t)

	s := NewSink(0)
	s.Report(Lexical(source.Position{Line: 1, Column: 1}, "@", "illegal character"))
	s.Report(Syntactic(source.Position{Line: 2, Column: 3}, ";", "unexpected token"))
	s.Report(Syntactic(source.Position{Line: 3, Column: 1}, "END", "unexpected token"))

	assert.Equal(1, s.Count(Lexical))
	assert.Equal(2, s.Count(Syntactic))
	assert.Equal(3, s.ErrorCount())
}

func Test_Sink_maxDiagnosticsBound(t *testing.T) {
	assert := assert.New(t)

	s := NewSink(2)
	for i := 0; i < 5; i++ {
		s.Report(Syntactic(source.Position{Line: 1, Column: 1}, "x", "oops"))
	}

	assert.Len(s.Diagnostics(), 2)
	assert.Equal(5, s.ErrorCount(), "ErrorCount must keep counting past the retained cap")
}

func Test_Sink_HasFatal(t *testing.T) {
	assert := assert.New(t)

	s := NewSink(0)
	assert.False(s.HasFatal())

	s.Report(Fatal(source.Position{Line: 1, Column: 1}, "unterminated comment"))
	assert.True(s.HasFatal())
}

func Test_Diagnostic_Unwrap(t *testing.T) {
	assert := assert.New(t)

	inner := errors.New("file not found")
	d := WrapResource(inner, "cannot open source")

	assert.ErrorIs(d, inner)
}
