package mesh

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidHeight = errors.New("mesh: triangle height must be finite and positive")

var triangleUV = []mgl32.Vec2{{0, 0}, {1, 0}, {0.5, 1}}

// Triangle builds an equilateral triangle of height h centred on the
// origin in the z=0 plane, base first, apex last.
func Triangle(h float32) (*Mesh, error) {
	hh := float64(h)
	if math.IsNaN(hh) || math.IsInf(hh, 0) || hh <= 0 {
		return nil, ErrInvalidHeight
	}
	a := float32(math.Sqrt(4 * hh * hh / 3))
	points := []mgl32.Vec3{
		{-a / 2, -h / 2, 0},
		{a / 2, -h / 2, 0},
		{0, h / 2, 0},
	}
	return New(points, triangleUV)
}
