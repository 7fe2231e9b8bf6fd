package material

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Kind identifies the material variant
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
	KindDiffuseLight
)

// String returns the lowercase material name
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	case KindDiffuseLight:
		return "diffuse-light"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Material describes how a surface scatters and emits light.
// Only the fields belonging to Kind are meaningful.
type Material struct {
	Kind            Kind
	Albedo          *Texture  // Lambertian reflectance
	Tint            core.Vec3 // Metal reflectance
	Fuzz            float64   // Metal roughness in [0, 1]
	RefractiveIndex float64   // Dielectric index of refraction
	Emission        *Texture  // DiffuseLight radiance
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// Scatter returns the outgoing ray and its attenuation, or false when the
// material absorbs the incoming ray.
func (m *Material) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

// Emit returns the light emitted at the given surface location.
// Only diffuse lights emit; every other material returns black.
func (m *Material) Emit(u, v float64, point core.Vec3) core.Vec3 {
	if m.Kind != KindDiffuseLight {
		return core.Vec3{}
	}
	return m.Emission.Value(u, v, point)
}
