package gfx

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// SetMat4 uploads m to loc of the program in use.
func SetMat4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// SetInt uploads v to loc of the program in use.
func SetInt(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

// Mat4 reads the current value of the matrix uniform at loc back from
// the GL.
func (p *Program) Mat4(loc int32) mgl32.Mat4 {
	var m mgl32.Mat4
	gl.GetUniformfv(p.ID, loc, &m[0])
	return m
}
