package gfx

import (
	"bytes"
	"image"
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tehcyx/gbprototype/internal/assets"
	"github.com/tehcyx/gbprototype/internal/mesh"
	"github.com/tehcyx/gbprototype/internal/texture"
	"github.com/tehcyx/gbprototype/internal/window/glfwwindow"
)

// glReady is set by TestMain when a hidden window with a GL 3.3 context
// could be created.
var glReady bool

func TestMain(m *testing.M) {
	runtime.LockOSThread()

	win, err := glfwwindow.OpenHidden()
	if err == nil {
		if _, err = Init(); err == nil {
			glReady = true
		}
	}
	code := m.Run()
	if win != nil {
		win.Destroy()
	}
	os.Exit(code)
}

func requireGL(t *testing.T) {
	t.Helper()
	if !glReady {
		t.Skip("no GL 3.3 context available")
	}
}

func newTriangleProgram(t *testing.T) *Program {
	t.Helper()
	src := assets.Shaders()
	p, err := NewProgram(src.Vertex, src.Fragment)
	require.NoError(t, err)
	t.Cleanup(p.Delete)
	return p
}

func TestNewProgramResolvesNames(t *testing.T) {
	requireGL(t)
	p := newTriangleProgram(t)

	_, err := p.AttribLocation(assets.AttribPosition)
	assert.NoError(t, err)
	_, err = p.AttribLocation(assets.AttribTexCoord)
	assert.NoError(t, err)
	_, err = p.UniformLocation(assets.UniformScale)
	assert.NoError(t, err)

	_, err = p.AttribLocation("v_normal")
	assert.ErrorIs(t, err, ErrMissingAttribute)
	_, err = p.UniformLocation("m_view")
	assert.ErrorIs(t, err, ErrMissingUniform)
}

func TestNewProgramReportsCompileLog(t *testing.T) {
	requireGL(t)
	src := assets.Shaders()
	broken := assets.Source{Name: "broken.vert", Text: "#version 330 core\nvoid main() { gl_Position = nope; }\n"}

	_, err := NewProgram(broken, src.Fragment)
	var serr *ShaderError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "vertex", serr.Stage)
	assert.Equal(t, "broken.vert", serr.Name)
	assert.NotEmpty(t, serr.Log)
}

func TestIdentityUniformsRoundTrip(t *testing.T) {
	requireGL(t)
	p := newTriangleProgram(t)
	p.Use()

	for _, name := range []string{assets.UniformScale, assets.UniformTranslate} {
		loc, err := p.UniformLocation(name)
		require.NoError(t, err)
		SetMat4(loc, mgl32.Ident4())
		assert.Equal(t, mgl32.Ident4(), p.Mat4(loc), name)
	}

	loc, err := p.UniformLocation(assets.UniformTranslate)
	require.NoError(t, err)
	moved := mgl32.Translate3D(0.25, -0.5, 0)
	SetMat4(loc, moved)
	assert.Equal(t, moved, p.Mat4(loc))
	assert.NoError(t, CheckError("uniforms"))
}

func TestUploadMeshAndTexture(t *testing.T) {
	requireGL(t)
	p := newTriangleProgram(t)
	posLoc, err := p.AttribLocation(assets.AttribPosition)
	require.NoError(t, err)
	texLoc, err := p.AttribLocation(assets.AttribTexCoord)
	require.NoError(t, err)

	m, err := mesh.Triangle(1)
	require.NoError(t, err)
	bufs, err := UploadMesh(m, posLoc, texLoc)
	require.NoError(t, err)
	assert.EqualValues(t, 3, bufs.Count)

	var size int32
	gl.BindBuffer(gl.ARRAY_BUFFER, bufs.PointsVBO)
	gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	assert.EqualValues(t, m.Points().LenBytes(), size)
	gl.BindBuffer(gl.ARRAY_BUFFER, bufs.TexVBO)
	gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	assert.EqualValues(t, m.TexCoords().LenBytes(), size)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	img, err := texture.Decode(bytes.NewReader(assets.Texture()))
	require.NoError(t, err)
	tex, err := UploadTexture(img)
	require.NoError(t, err)
	assert.NotZero(t, tex.ID)
	assert.GreaterOrEqual(t, MaxAnisotropy(), float32(1))

	vao := bufs.VAO
	res := &Resources{Program: p, Mesh: bufs, Texture: tex}
	res.Delete()
	res.Delete()
	assert.Nil(t, res.Mesh)
	assert.False(t, gl.IsVertexArray(vao))
	assert.NoError(t, CheckError("delete"))
}

func TestUploadTextureRejectsEmpty(t *testing.T) {
	requireGL(t)
	_, err := UploadTexture(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestMaxAnisotropyIgnoresQueuedErrors(t *testing.T) {
	requireGL(t)
	t.Cleanup(resetMaxAnisotropy)

	resetMaxAnisotropy()
	want := MaxAnisotropy()

	resetMaxAnisotropy()
	gl.Enable(0xFFFF) // INVALID_ENUM, left on the queue
	gl.Enable(0xFFFE)
	assert.Equal(t, want, MaxAnisotropy())
	assert.NoError(t, CheckError("after anisotropy query"), "queue is drained")
}
