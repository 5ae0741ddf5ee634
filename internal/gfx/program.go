package gfx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/tehcyx/gbprototype/internal/assets"
)

var (
	ErrMissingAttribute = errors.New("gfx: attribute not found in program")
	ErrMissingUniform   = errors.New("gfx: uniform not found in program")
)

// ShaderError carries the driver's info log for a failed compile or link.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Name  string
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("gfx: failed to link program %s: %s", e.Name, e.Log)
	}
	return fmt.Sprintf("gfx: failed to compile %s shader %s: %s", e.Stage, e.Name, e.Log)
}

// Program is a linked shader program.
type Program struct {
	ID   uint32
	Name string
}

func compileShader(src assets.Source, kind uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(src.Text + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	if err := shaderErrorCheck(shader, src.Name, stage); err != nil {
		gl.DeleteShader(shader)
		return 0, err
	}
	return shader, nil
}

func shaderErrorCheck(shader uint32, name, stage string) error {
	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success != gl.FALSE {
		return nil
	}
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

	return &ShaderError{Stage: stage, Name: name, Log: strings.TrimRight(log, "\x00\n")}
}

func linkerErrorCheck(program uint32, name string) error {
	var success int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &success)
	if success != gl.FALSE {
		return nil
	}
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

	return &ShaderError{Stage: "link", Name: name, Log: strings.TrimRight(log, "\x00\n")}
}

// NewProgram compiles and links a vertex/fragment pair. The shader
// objects are released once linked.
func NewProgram(vs, fs assets.Source) (*Program, error) {
	vertex, err := compileShader(vs, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fs, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	p := &Program{ID: gl.CreateProgram(), Name: vs.Name + "+" + fs.Name}
	gl.AttachShader(p.ID, vertex)
	gl.AttachShader(p.ID, fragment)
	gl.LinkProgram(p.ID)
	if err := linkerErrorCheck(p.ID, p.Name); err != nil {
		gl.DeleteProgram(p.ID)
		return nil, err
	}
	gl.DetachShader(p.ID, vertex)
	gl.DetachShader(p.ID, fragment)
	return p, nil
}

// AttribLocation resolves a vertex input by name.
func (p *Program) AttribLocation(name string) (uint32, error) {
	loc := gl.GetAttribLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrMissingAttribute, name, p.Name)
	}
	return uint32(loc), nil
}

// UniformLocation resolves a uniform by name. Uniforms the linker
// optimised away are reported as missing.
func (p *Program) UniformLocation(name string) (int32, error) {
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrMissingUniform, name, p.Name)
	}
	return loc, nil
}

func (p *Program) Use() { gl.UseProgram(p.ID) }

// Delete releases the program. Later calls are no-ops.
func (p *Program) Delete() {
	if p.ID == 0 {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
}
