package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) Material {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo *Texture) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// scatterLambertian sends the ray toward a random point in the unit sphere
// tangent to the hit point. It always scatters.
func (m *Material) scatterLambertian(hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.SamplePointInUnitSphere(sampler))

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
