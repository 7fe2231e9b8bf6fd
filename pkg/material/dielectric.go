package material

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

func (m *Material) scatterDielectric(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	direction := rayIn.Direction
	reflected := core.Reflect(direction, hit.Normal)

	// Normals point outward, so a positive dot product means the ray is exiting
	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	dn := direction.Dot(hit.Normal)
	if dn > 0 {
		outwardNormal = hit.Normal.Negate()
		niOverNt = m.RefractiveIndex
		cosine = m.RefractiveIndex * dn / direction.Length()
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / m.RefractiveIndex
		cosine = -dn / direction.Length()
	}

	reflectProb := 1.0 // total internal reflection
	refracted, canRefract := core.Refract(direction, outwardNormal, niOverNt)
	if canRefract {
		reflectProb = Reflectance(cosine, m.RefractiveIndex)
	}

	outgoing := refracted
	if sampler.Get1D() < reflectProb {
		outgoing = reflected
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, outgoing),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
