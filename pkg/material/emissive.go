package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// NewDiffuseLight creates a light-emitting material with a solid color
func NewDiffuseLight(emission core.Vec3) Material {
	return NewTexturedDiffuseLight(NewSolidColor(emission))
}

// NewTexturedDiffuseLight creates a light-emitting material with texture.
// Lights never scatter; they terminate the path with their emission.
func NewTexturedDiffuseLight(emission *Texture) Material {
	return Material{Kind: KindDiffuseLight, Emission: emission}
}
