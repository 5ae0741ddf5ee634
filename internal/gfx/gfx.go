// Package gfx performs the GL side of the prototype: building shader
// programs, uploading meshes and textures, and setting uniforms. Every
// function requires a current GL 3.3 core context on the calling thread.
package gfx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var ErrGL = errors.New("gfx: gl error")

// Info describes the driver behind the current context.
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// Init loads the GL function pointers for the current context.
func Init() (Info, error) {
	if err := gl.Init(); err != nil {
		return Info{}, fmt.Errorf("gfx: init: %w", err)
	}
	return Info{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}, nil
}

var errorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "INVALID_ENUM",
	gl.INVALID_VALUE:                 "INVALID_VALUE",
	gl.INVALID_OPERATION:             "INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
}

// CheckError drains the GL error queue and reports what it held, tagged
// with op.
func CheckError(op string) error {
	var names []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		name, ok := errorNames[code]
		if !ok {
			name = fmt.Sprintf("0x%04x", code)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: %s", ErrGL, op, strings.Join(names, ", "))
}
