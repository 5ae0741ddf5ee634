// Package assets embeds the shaders and texture the prototype renders with.
package assets

import (
	_ "embed"
)

// Names the shader pair declares. The GL side looks these up after linking.
const (
	AttribPosition   = "v_pos"
	AttribTexCoord   = "v_tex"
	UniformScale     = "m_scale"
	UniformTranslate = "m_trans"
	UniformTexture   = "tex"
)

var (
	//go:embed shaders/triangle.vert.glsl
	vertexShader string

	//go:embed shaders/triangle.frag.glsl
	fragmentShader string

	//go:embed textures/checker.png
	texture []byte
)

// Source is shader text with the name used in diagnostics.
type Source struct {
	Name string
	Text string
}

// ShaderSource pairs the two stages of one program.
type ShaderSource struct {
	Vertex   Source
	Fragment Source
}

// Shaders returns the embedded triangle program.
func Shaders() ShaderSource {
	return ShaderSource{
		Vertex:   Source{Name: "triangle.vert.glsl", Text: vertexShader},
		Fragment: Source{Name: "triangle.frag.glsl", Text: fragmentShader},
	}
}

// Texture returns the embedded PNG. Callers must not modify it.
func Texture() []byte {
	return texture
}
