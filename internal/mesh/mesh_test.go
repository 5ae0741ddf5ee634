package mesh

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	points := []mgl32.Vec3{{1, 2, 3}, {4, 5, 6}}
	uvs := []mgl32.Vec2{{0, 0}, {1, 1}}

	m, err := New(points, uvs)
	require.NoError(t, err)

	points[0] = mgl32.Vec3{9, 9, 9}
	uvs[1] = mgl32.Vec2{7, 7}

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, m.Points().Slice()[0])
	assert.Equal(t, mgl32.Vec2{1, 1}, m.TexCoords().Slice()[1])
	assert.Equal(t, 2, m.Len())
}

func TestNewRejectsMismatchedLengths(t *testing.T) {
	_, err := New([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}, []mgl32.Vec2{{0, 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	var lerr *LengthError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 2, lerr.Points)
	assert.Equal(t, 1, lerr.TexCoords)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLenBytes(t *testing.T) {
	for _, n := range []int{1, 3, 17} {
		m, err := New(make([]mgl32.Vec3, n), make([]mgl32.Vec2, n))
		require.NoError(t, err)
		assert.Equal(t, 3*4*n, m.Points().LenBytes())
		assert.Equal(t, 2*4*n, m.TexCoords().LenBytes())
		assert.Equal(t, n, m.Points().Len())
		assert.Equal(t, n, m.TexCoords().Len())
	}
}

func TestPtrIsTightlyPacked(t *testing.T) {
	m, err := New([]mgl32.Vec3{{1, 2, 3}, {4, 5, 6}}, []mgl32.Vec2{{7, 8}, {9, 10}})
	require.NoError(t, err)

	pts := unsafe.Slice((*float32)(m.Points().Ptr()), 6)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, pts)

	uvs := unsafe.Slice((*float32)(m.TexCoords().Ptr()), 4)
	assert.Equal(t, []float32{7, 8, 9, 10}, uvs)

	assert.Nil(t, Points{}.Ptr())
	assert.Nil(t, TexCoords{}.Ptr())
}

func TestBounds(t *testing.T) {
	m, err := New([]mgl32.Vec3{{1, -2, 0}, {-3, 4, 1}, {0, 0, -1}}, make([]mgl32.Vec2, 3))
	require.NoError(t, err)

	lo, hi := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-3, -2, -1}, lo)
	assert.Equal(t, mgl32.Vec3{1, 4, 1}, hi)
}
