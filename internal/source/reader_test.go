package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(rd *Reader) {
	for !rd.AtEnd() {
		rd.Consume()
	}
}

func Test_Reader_lineColumnTracking(t *testing.T) {
	assert := assert.New(t)

	rd := New(strings.NewReader("ab\ncd"), "test")

	assert.Equal('a', rd.Current())
	assert.Equal(1, rd.Pos().Line)
	assert.Equal(1, rd.Pos().Column)

	rd.Consume() // consumes 'a', cursor now on 'b'
	assert.Equal('b', rd.Current())
	assert.Equal(1, rd.Pos().Line)
	assert.Equal(2, rd.Pos().Column)

	rd.Consume() // consumes 'b', cursor now on '\n'
	rd.Consume() // consumes '\n', cursor now on 'c'
	assert.Equal('c', rd.Current())
	assert.Equal(2, rd.Pos().Line)
	assert.Equal(1, rd.Pos().Column)
}

func Test_Reader_lookahead2(t *testing.T) {
	assert := assert.New(t)

	rd := New(strings.NewReader("xyz"), "test")

	assert.Equal('x', rd.Current())
	assert.Equal('y', rd.Lookahead2())

	rd.Consume()
	assert.Equal('y', rd.Current())
	assert.Equal('z', rd.Lookahead2())
}

func Test_Reader_lexemeMarking(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	rd := New(strings.NewReader("MODULE Foo"), "test")

	rd.Mark()
	for i := 0; i < len("MODULE"); i++ {
		rd.Consume()
	}
	lexeme, pos := rd.Lexeme()
	require.Equal("MODULE", lexeme)
	assert.Equal(1, pos.Line)
	assert.Equal(1, pos.Column)
}

func Test_Reader_eotSentinel(t *testing.T) {
	assert := assert.New(t)

	rd := New(strings.NewReader("a"), "test")
	rd.Consume()
	assert.Equal(EOT, rd.Current())
	assert.True(rd.AtEnd())

	// further consumption past EOT is a no-op, not a panic.
	rd.Consume()
	assert.Equal(EOT, rd.Current())
}

func Test_Reader_digest_matchesAcrossIdenticalSource(t *testing.T) {
	assert := assert.New(t)

	const src = "DEFINITION MODULE A; END A."

	rd1 := New(strings.NewReader(src), "a")
	drain(rd1)
	rd2 := New(strings.NewReader(src), "b")
	drain(rd2)

	assert.Equal(rd1.Digest(), rd2.Digest())
}

func Test_Reader_digest_excludesSkipBypassedCharacters(t *testing.T) {
	assert := assert.New(t)

	rd := New(strings.NewReader("ab"), "test")
	rd.Consume()     // digests 'a'
	rd.ConsumeSkip() // does not digest 'b'
	digestSkipped := rd.Digest()

	rd2 := New(strings.NewReader("a"), "test2")
	drain(rd2)

	assert.Equal(rd2.Digest(), digestSkipped)
}

func Test_Reader_digest_panicsBeforeEOT(t *testing.T) {
	assert := assert.New(t)

	rd := New(strings.NewReader("ab"), "test")
	assert.Panics(func() {
		rd.Digest()
	})
}
