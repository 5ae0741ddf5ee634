package gfx

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/tehcyx/gbprototype/internal/mesh"
)

// MeshBuffers is a vertex array with one buffer per attribute.
type MeshBuffers struct {
	VAO       uint32
	PointsVBO uint32
	TexVBO    uint32
	Count     int32
}

// UploadMesh copies m into two static buffers and records the attribute
// layout in a new vertex array: three floats per position at posLoc and
// two floats per UV at texLoc, both tightly packed.
func UploadMesh(m *mesh.Mesh, posLoc, texLoc uint32) (*MeshBuffers, error) {
	b := &MeshBuffers{Count: int32(m.Len())}

	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.PointsVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.PointsVBO)
	gl.BufferData(gl.ARRAY_BUFFER, m.Points().LenBytes(), m.Points().Ptr(), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(posLoc, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(posLoc)

	gl.GenBuffers(1, &b.TexVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.TexVBO)
	gl.BufferData(gl.ARRAY_BUFFER, m.TexCoords().LenBytes(), m.TexCoords().Ptr(), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(texLoc, 2, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(texLoc)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if err := CheckError("upload mesh"); err != nil {
		b.Delete()
		return nil, err
	}
	return b, nil
}

func (b *MeshBuffers) Bind() { gl.BindVertexArray(b.VAO) }

// Delete releases the vertex array and both buffers. Later calls are
// no-ops.
func (b *MeshBuffers) Delete() {
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
		b.VAO = 0
	}
	if b.PointsVBO != 0 {
		gl.DeleteBuffers(1, &b.PointsVBO)
		b.PointsVBO = 0
	}
	if b.TexVBO != 0 {
		gl.DeleteBuffers(1, &b.TexVBO)
		b.TexVBO = 0
	}
}
