package core

import (
	"math/rand"

	"seehuhn.de/go/geom/vec"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() vec.Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic source
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() vec.Vec2 {
	return vec.Vec2{X: r.random.Float64(), Y: r.random.Float64()}
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SamplePointInUnitSphere returns a uniformly distributed point strictly inside the unit sphere
func SamplePointInUnitSphere(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := sampler.Get3D().Multiply(2).Subtract(NewVec3(1, 1, 1))
		// Accept if inside unit sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// SamplePointInUnitDisk returns a uniformly distributed point inside the unit disk (z = 0)
func SamplePointInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D().Mul(2).Sub(vec.Vec2{X: 1, Y: 1})
		if s.X*s.X+s.Y*s.Y < 1.0 {
			return NewVec3(s.X, s.Y, 0)
		}
	}
}
