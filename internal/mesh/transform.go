package mesh

import "github.com/go-gl/mathgl/mgl32"

// Transform is the scale and translation applied to a mesh in the vertex
// shader.
type Transform struct {
	Scale       mgl32.Mat4
	Translation mgl32.Mat4
}

func IdentityTransform() Transform {
	return Transform{Scale: mgl32.Ident4(), Translation: mgl32.Ident4()}
}

// Matrix returns the combined model matrix, scale first.
func (t Transform) Matrix() mgl32.Mat4 {
	return t.Translation.Mul4(t.Scale)
}

// Apply returns the positions of m after the transform, matching what the
// vertex shader computes.
func (t Transform) Apply(m *Mesh) []mgl32.Vec3 {
	model := t.Matrix()
	out := make([]mgl32.Vec3, 0, m.Len())
	for _, p := range m.points.inner {
		out = append(out, mgl32.TransformCoordinate(p, model))
	}
	return out
}
