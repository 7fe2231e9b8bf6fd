package material

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// TextureKind identifies the texture variant
type TextureKind int

const (
	TextureConstant TextureKind = iota // uniform color
	TextureChecker                     // 3D checkerboard of two sub-textures
)

// checkerFrequency controls the size of the checker cells in world units
const checkerFrequency = 10.0

// Texture provides spatially-varying colors for materials
type Texture struct {
	Kind  TextureKind
	Color core.Vec3 // TextureConstant
	Odd   *Texture  // TextureChecker, cells where the sine product is negative
	Even  *Texture  // TextureChecker, all other cells
}

// NewSolidColor creates a texture with a uniform color
func NewSolidColor(color core.Vec3) *Texture {
	return &Texture{Kind: TextureConstant, Color: color}
}

// NewCheckerTexture creates a 3D checkerboard alternating between two textures
func NewCheckerTexture(odd, even *Texture) *Texture {
	return &Texture{Kind: TextureChecker, Odd: odd, Even: even}
}

// Value returns the texture color at the given UV coordinates and 3D point.
// A nil texture evaluates to black.
func (t *Texture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t == nil {
		return core.Vec3{}
	}

	switch t.Kind {
	case TextureChecker:
		sines := math.Sin(checkerFrequency*point.X) *
			math.Sin(checkerFrequency*point.Y) *
			math.Sin(checkerFrequency*point.Z)
		if sines < 0 {
			return t.Odd.Value(u, v, point)
		}
		return t.Even.Value(u, v, point)
	default:
		return t.Color
	}
}
