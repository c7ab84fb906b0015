package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseArgs_minimalSourceOnly(t *testing.T) {
	assert := assert.New(t)

	s, diags := ParseArgs([]string{"foo.mod"})

	assert.Empty(diags)
	assert.Equal("foo.mod", s.SourceFile)
	assert.False(s.InfoOnly())
}

func Test_ParseArgs_missingSourceIsError(t *testing.T) {
	assert := assert.New(t)

	_, diags := ParseArgs([]string{"--verbose"})

	assert.NotEmpty(diags)
}

func Test_ParseArgs_helpAloneNeedsNoSource(t *testing.T) {
	assert := assert.New(t)

	s, diags := ParseArgs([]string{"--help"})

	assert.Empty(diags)
	assert.True(s.Help)
	assert.True(s.InfoOnly())
}

func Test_ParseArgs_duplicateOptionIsError(t *testing.T) {
	assert := assert.New(t)

	_, diags := ParseArgs([]string{"--verbose", "--verbose", "foo.mod"})

	assert.NotEmpty(diags)
}

func Test_ParseArgs_noAstAndAstAreMutuallyExclusive(t *testing.T) {
	assert := assert.New(t)

	_, diags := ParseArgs([]string{"--ast", "--no-ast", "foo.mod"})

	assert.NotEmpty(diags)
}

func Test_ParseArgs_noAstClearsAst(t *testing.T) {
	assert := assert.New(t)

	s, diags := ParseArgs([]string{"--no-ast", "foo.mod"})

	assert.Empty(diags)
	assert.False(s.AST)
}

func Test_ParseArgs_preserveCommentsWithoutXlatIsError(t *testing.T) {
	assert := assert.New(t)

	_, diags := ParseArgs([]string{"--preserve-comments", "foo.mod"})

	assert.NotEmpty(diags)
}

func Test_ParseArgs_preserveCommentsWithXlatIsAccepted(t *testing.T) {
	assert := assert.New(t)

	s, diags := ParseArgs([]string{"--xlat", "--preserve-comments", "foo.mod"})

	assert.Empty(diags)
	assert.True(s.Xlat)
	assert.True(s.PreserveComments)
}

func Test_ParseArgs_preserveAndStripCommentsTogetherIsError(t *testing.T) {
	assert := assert.New(t)

	_, diags := ParseArgs([]string{"--xlat", "--preserve-comments", "--strip-comments", "foo.mod"})

	assert.NotEmpty(diags)
}

func Test_ParseArgs_extraArgumentsIsError(t *testing.T) {
	assert := assert.New(t)

	_, diags := ParseArgs([]string{"foo.mod", "bar.mod"})

	assert.NotEmpty(diags)
}

func Test_ParseArgs_dollarIdentifiersCapability(t *testing.T) {
	assert := assert.New(t)

	s, diags := ParseArgs([]string{"--dollar-identifiers", "foo.mod"})

	assert.Empty(diags)
	assert.True(s.DollarIdentifiers)
}

func Test_Settings_Dump_producesTOML(t *testing.T) {
	assert := assert.New(t)

	s, diags := ParseArgs([]string{"--verbose", "foo.mod"})
	assert.Empty(diags)

	out, err := s.Dump()
	assert.NoError(err)
	assert.Contains(out, "SourceFile")
}
