// Package mesh holds model-space geometry ready for upload to the GPU.
package mesh

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

const floatSize = 4

var (
	ErrLengthMismatch = errors.New("mesh: points and texture coordinates differ in length")
	ErrEmpty          = errors.New("mesh: no vertices")
)

// LengthError reports the two lengths handed to New when they disagree.
type LengthError struct {
	Points    int
	TexCoords int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: %d points, %d texture coordinates", ErrLengthMismatch, e.Points, e.TexCoords)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// Points is a tightly packed buffer of vertex positions.
type Points struct {
	inner []mgl32.Vec3
}

// Len returns the number of positions in the buffer.
func (p Points) Len() int { return len(p.inner) }

// LenBytes returns the size of the buffer in bytes.
func (p Points) LenBytes() int { return 3 * floatSize * len(p.inner) }

// Ptr returns a pointer to the first float of the buffer, or nil when the
// buffer is empty. The memory must not be written through.
func (p Points) Ptr() unsafe.Pointer {
	if len(p.inner) == 0 {
		return nil
	}
	return unsafe.Pointer(&p.inner[0])
}

// Slice returns a copy of the positions.
func (p Points) Slice() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), p.inner...)
}

// TexCoords is a tightly packed buffer of UV pairs.
type TexCoords struct {
	inner []mgl32.Vec2
}

// Len returns the number of UV pairs in the buffer.
func (t TexCoords) Len() int { return len(t.inner) }

// LenBytes returns the size of the buffer in bytes.
func (t TexCoords) LenBytes() int { return 2 * floatSize * len(t.inner) }

// Ptr returns a pointer to the first float of the buffer, or nil when the
// buffer is empty. The memory must not be written through.
func (t TexCoords) Ptr() unsafe.Pointer {
	if len(t.inner) == 0 {
		return nil
	}
	return unsafe.Pointer(&t.inner[0])
}

// Slice returns a copy of the UV pairs.
func (t TexCoords) Slice() []mgl32.Vec2 {
	return append([]mgl32.Vec2(nil), t.inner...)
}

// Mesh is a model space representation of a textured figure. It is
// immutable once built.
type Mesh struct {
	points    Points
	texCoords TexCoords
}

// New copies points and texCoords into a new mesh. Both slices must be
// non-empty and of equal length.
func New(points []mgl32.Vec3, texCoords []mgl32.Vec2) (*Mesh, error) {
	if len(points) != len(texCoords) {
		return nil, &LengthError{Points: len(points), TexCoords: len(texCoords)}
	}
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	return &Mesh{
		points:    Points{inner: append([]mgl32.Vec3(nil), points...)},
		texCoords: TexCoords{inner: append([]mgl32.Vec2(nil), texCoords...)},
	}, nil
}

// Len returns the number of vertices in the mesh.
func (m *Mesh) Len() int { return m.points.Len() }

func (m *Mesh) Points() Points { return m.points }

func (m *Mesh) TexCoords() TexCoords { return m.texCoords }

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	lo, hi = m.points.inner[0], m.points.inner[0]
	for _, p := range m.points.inner[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	return lo, hi
}
