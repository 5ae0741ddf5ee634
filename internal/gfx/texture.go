package gfx

import (
	"errors"
	"image"
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var ErrEmptyImage = errors.New("gfx: empty texture image")

// Texture is a 2D texture object.
type Texture struct {
	ID            uint32
	Width, Height int32
}

var (
	anisotropyMu  sync.Mutex
	maxAnisotropy float32 // zero until queried
)

// MaxAnisotropy returns the driver's largest anisotropic filtering level.
// It is queried on first use and cached for the process; the cache
// outlives the context it was read from and assumes the same driver
// backs any later one.
// Errors already queued when it runs are discarded.
func MaxAnisotropy() float32 {
	anisotropyMu.Lock()
	defer anisotropyMu.Unlock()

	if maxAnisotropy != 0 {
		return maxAnisotropy
	}
	_ = CheckError("before anisotropy query")

	var v float32
	gl.GetFloatv(gl.MAX_TEXTURE_MAX_ANISOTROPY, &v)
	// Drivers without the extension flag INVALID_ENUM.
	if CheckError("anisotropy query") != nil || v < 1 {
		v = 1
	}
	maxAnisotropy = v
	return maxAnisotropy
}

func resetMaxAnisotropy() {
	anisotropyMu.Lock()
	maxAnisotropy = 0
	anisotropyMu.Unlock()
}

// UploadTexture copies img into a new mipmapped texture with edge
// clamping, linear filtering and maximum anisotropy. img is expected to
// be bottom row first.
func UploadTexture(img *image.RGBA) (*Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	t := &Texture{Width: int32(b.Dx()), Height: int32(b.Dy())}

	gl.GenTextures(1, &t.ID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.Width, t.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if err := CheckError("upload texture"); err != nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		t.Delete()
		return nil, err
	}
	if aniso := MaxAnisotropy(); aniso > 1 {
		gl.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, aniso)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := CheckError("texture anisotropy"); err != nil {
		t.Delete()
		return nil, err
	}
	return t, nil
}

// Bind makes t the texture of the given unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

func (t *Texture) Delete() {
	if t.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}
