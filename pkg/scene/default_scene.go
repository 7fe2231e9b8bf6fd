package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewDefaultScene creates the classic three-sphere scene: a diffuse red
// sphere, a fuzzy gold metal sphere and a hollow glass sphere on a large
// yellow ground sphere.
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         500,
		AspectRatio:   2.0,
		VFov:          30.0,
		Aperture:      0.0,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := newScene("default", cameraConfig, core.DefaultSamplingConfig())

	lambertianRed := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3)))
	lambertianYellow := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	metalGold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2))
	glass := s.AddMaterial(material.NewDielectric(1.5))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, lambertianRed)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, lambertianYellow)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)

	// Hollow glass: the inner sphere's negative radius flips its normals inward
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.45, glass)

	return s
}
