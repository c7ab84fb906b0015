package pathname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse_recognizesDefSuffix(t *testing.T) {
	assert := assert.New(t)

	p, diags := Parse("src/Foo.def", PosixPolicy)

	assert.Empty(diags)
	assert.Equal("src", p.Dir)
	assert.Equal("Foo", p.Basename)
	assert.Equal(SuffixDef, p.Suffix)
}

func Test_Parse_recognizesUppercaseModSuffix(t *testing.T) {
	assert := assert.New(t)

	p, diags := Parse("Foo.MOD", PosixPolicy)

	assert.Empty(diags)
	assert.Equal("Foo", p.Basename)
	assert.Equal(SuffixMod, p.Suffix)
}

func Test_Parse_unrecognizedSuffixKeepsFullFilenameAsBasename(t *testing.T) {
	assert := assert.New(t)

	p, diags := Parse("Foo.txt", PosixPolicy)

	assert.Empty(diags)
	assert.Equal("Foo.txt", p.Basename)
	assert.Equal(SuffixNone, p.Suffix)
}

func Test_Parse_disallowedCharacterReported(t *testing.T) {
	assert := assert.New(t)

	strict := CharClassPolicy{}
	_, diags := Parse("foo bar.mod", strict)

	assert.NotEmpty(diags)
}

func Test_Parse_roundTripsThroughString(t *testing.T) {
	assert := assert.New(t)

	p, diags := Parse("src/Foo.def", PosixPolicy)
	assert.Empty(diags)
	assert.Equal("src/Foo.def", p.String())
}

func Test_Parse_emptyFilenameReported(t *testing.T) {
	assert := assert.New(t)

	_, diags := Parse("src/", PosixPolicy)

	assert.NotEmpty(diags)
}
