package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"seehuhn.de/go/geom/vec"
)

// fixedSampler returns the same values on every call
type fixedSampler struct {
	value1D float64
	value3D core.Vec3
}

func (f *fixedSampler) Get1D() float64  { return f.value1D }
func (f *fixedSampler) Get2D() vec.Vec2 { return vec.Vec2{X: f.value1D, Y: f.value1D} }
func (f *fixedSampler) Get3D() core.Vec3 {
	return f.value3D
}

// centeredSampler maps unit sphere samples to the origin
func centeredSampler(value1D float64) *fixedSampler {
	return &fixedSampler{value1D: value1D, value3D: core.NewVec3(0.5, 0.5, 0.5)}
}
