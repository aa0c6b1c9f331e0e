package arrangement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lal-project/linarr/arrangement"
)

func TestIdentity(t *testing.T) {
	a := arrangement.Identity(5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, a.Position(i))
		assert.Equal(t, i, a.Vertex(i))
	}
	assert.True(t, a.IsIdentity())
}

func TestSentinel(t *testing.T) {
	var a arrangement.Arrangement
	assert.True(t, a.IsIdentitySentinel())
	assert.Equal(t, 3, a.Position(3))
	assert.Equal(t, 3, a.Vertex(3))
	assert.True(t, a.IsIdentity())
}

func TestNew_RejectsNonPermutation(t *testing.T) {
	_, err := arrangement.New([]int{0, 0, 2})
	assert.ErrorIs(t, err, arrangement.ErrNotAPermutation)
}

func TestSet_KeepsBijection(t *testing.T) {
	a := arrangement.Identity(4)
	a.Set(0, 3) // swap vertex 0 into position 3
	assert.Equal(t, 3, a.Position(0))
	assert.Equal(t, 0, a.Vertex(3))
	assert.Equal(t, 0, a.Position(3)) // vertex 3 took over position 0
	assert.Equal(t, 3, a.Vertex(0))
}

func TestReverse(t *testing.T) {
	direct, err := arrangement.New([]int{0, 1, 2, 3})
	require.NoError(t, err)
	r := direct.Reverse()
	assert.Equal(t, 3, r.Position(0))
	assert.Equal(t, 0, r.Position(3))
}
