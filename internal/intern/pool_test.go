package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Pool_Intern_idempotent(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p := New(16)

	h1, err := p.InternString("MODULE")
	require.NoError(err)
	h2, err := p.InternString("MODULE")
	require.NoError(err)

	assert.Equal(h1, h2)
	assert.Equal(2, p.RefCount(h1))
}

func Test_Pool_Intern_distinctSequencesGetDistinctHandles(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p := New(16)

	h1, err := p.InternString("Foo")
	require.NoError(err)
	h2, err := p.InternString("Bar")
	require.NoError(err)

	assert.NotEqual(h1, h2)
}

func Test_Pool_Bytes_roundTrip(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	p := New(16)
	h, err := p.InternString("IMPLEMENTATION")
	require.NoError(err)

	assert.Equal("IMPLEMENTATION", p.String(h))
	assert.Equal(14, p.Length(h))
}

func Test_Pool_RetainRelease(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	p := New(16)
	h, err := p.InternString("X")
	require.NoError(err)

	assert.Equal(1, p.RefCount(h))
	p.Retain(h)
	assert.Equal(2, p.RefCount(h))
	p.Release(h)
	assert.Equal(1, p.RefCount(h))
	p.Release(h)
	assert.Equal(0, p.RefCount(h))
}

func Test_Pool_Release_reclaimAllowsReinterningFreshHandle(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	p := New(16)
	h1, err := p.InternString("Temp")
	require.NoError(err)
	p.Release(h1)

	h2, err := p.InternString("Temp")
	require.NoError(err)

	assert.NotEqual(h1, h2)
}

func Test_GlobalPool_InitTeardown(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	Teardown()
	defer Teardown()

	_, err := Global()
	assert.ErrorIs(err, ErrNotInitialized)

	require.NoError(Init())
	_, err = Global()
	assert.NoError(err)

	assert.ErrorIs(Init(), ErrDoubleInit)
}
