// Package scene holds the drawable scenes of the prototype.
package scene

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tehcyx/gbprototype/internal/assets"
	"github.com/tehcyx/gbprototype/internal/core"
	"github.com/tehcyx/gbprototype/internal/gfx"
	"github.com/tehcyx/gbprototype/internal/mesh"
)

type Options struct {
	ClearColor mgl32.Vec4
	Wireframe  bool
	Transform  mesh.Transform
}

// DefaultOptions draws filled geometry with no transform.
func DefaultOptions() Options {
	return Options{
		ClearColor: mgl32.Vec4{0.2, 0.2, 0.2, 1.0},
		Transform:  mesh.IdentityTransform(),
	}
}

// Triangle draws one textured mesh.
type Triangle struct {
	log  *slog.Logger
	opts Options
	res  gfx.Resources

	shaderScale     int32
	shaderTranslate int32
	shaderTexture   int32
}

var _ core.Scene = (*Triangle)(nil)

// New builds the program from src, uploads m and img, and resolves the
// uniforms the frame needs. Anything created before a failure is
// released again.
func New(log *slog.Logger, opts Options, src assets.ShaderSource, m *mesh.Mesh, img *image.RGBA) (*Triangle, error) {
	s := &Triangle{log: log, opts: opts}
	if err := s.init(src, m, img); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("scene: %w", err)
	}

	lo, hi := m.Bounds()
	log.Info("scene ready",
		"vertices", m.Len(),
		"min", lo, "max", hi,
		"texture", fmt.Sprintf("%dx%d", s.res.Texture.Width, s.res.Texture.Height),
		"anisotropy", gfx.MaxAnisotropy())
	return s, nil
}

func (s *Triangle) init(src assets.ShaderSource, m *mesh.Mesh, img *image.RGBA) error {
	var err error

	s.res.Program, err = gfx.NewProgram(src.Vertex, src.Fragment)
	if err != nil {
		var serr *gfx.ShaderError
		if errors.As(err, &serr) {
			s.log.Error("shader build failed", "stage", serr.Stage, "name", serr.Name, "log", serr.Log)
		}
		return err
	}
	p := s.res.Program

	posLoc, err := p.AttribLocation(assets.AttribPosition)
	if err != nil {
		return err
	}
	texLoc, err := p.AttribLocation(assets.AttribTexCoord)
	if err != nil {
		return err
	}

	if s.res.Mesh, err = gfx.UploadMesh(m, posLoc, texLoc); err != nil {
		return err
	}
	if s.res.Texture, err = gfx.UploadTexture(img); err != nil {
		return err
	}

	if s.shaderScale, err = p.UniformLocation(assets.UniformScale); err != nil {
		return err
	}
	if s.shaderTranslate, err = p.UniformLocation(assets.UniformTranslate); err != nil {
		return err
	}
	if s.shaderTexture, err = p.UniformLocation(assets.UniformTexture); err != nil {
		return err
	}

	p.Use()
	gfx.SetInt(s.shaderTexture, 0)
	s.uploadTransform()
	return gfx.CheckError("scene setup")
}

func (s *Triangle) uploadTransform() {
	gfx.SetMat4(s.shaderScale, s.opts.Transform.Scale)
	gfx.SetMat4(s.shaderTranslate, s.opts.Transform.Translation)
}

// Transform reads the scale and translation currently set on the GPU.
func (s *Triangle) Transform() mesh.Transform {
	return mesh.Transform{
		Scale:       s.res.Program.Mat4(s.shaderScale),
		Translation: s.res.Program.Mat4(s.shaderTranslate),
	}
}

func (s *Triangle) Update(*core.RenderInput) error { return nil }

// Render clears the frame and draws the mesh. GL errors are checked on
// the first frame only.
func (s *Triangle) Render(in *core.RenderInput) error {
	c := s.opts.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if s.opts.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	s.res.Program.Use()
	s.uploadTransform()
	s.res.Texture.Bind(0)
	s.res.Mesh.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, s.res.Mesh.Count)
	gl.BindVertexArray(0)

	if in.Frame == 0 {
		return gfx.CheckError("first frame")
	}
	return nil
}

// Destroy releases the scene's GL objects.
func (s *Triangle) Destroy() {
	s.res.Delete()
}
