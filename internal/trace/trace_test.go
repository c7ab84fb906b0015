package trace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewSession_assignsNonZeroID(t *testing.T) {
	assert := assert.New(t)

	s := NewSession(&bytes.Buffer{})

	assert.NotEqual("00000000-0000-0000-0000-000000000000", s.ID.String())
}

func Test_Tracef_writesOnlyEnabledChannels(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	s := NewSession(&buf, LexerDebug)

	s.Tracef(LexerDebug, "token %s", "BEGIN")
	s.Tracef(ParserDebug, "should not appear")

	out := buf.String()
	assert.Contains(out, "token BEGIN")
	assert.NotContains(out, "should not appear")
}

func Test_Enabled_reportsGatedChannels(t *testing.T) {
	assert := assert.New(t)

	s := NewSession(&bytes.Buffer{}, Verbose)

	assert.True(s.Enabled(Verbose))
	assert.False(s.Enabled(LexerDebug))
}

func Test_Enabled_nilSessionIsAlwaysDisabled(t *testing.T) {
	assert := assert.New(t)

	var s *Session
	assert.False(s.Enabled(Verbose))
}
