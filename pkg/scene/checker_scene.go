package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewCheckerScene creates a scene with checker-textured ground and spheres,
// shot with a wide aperture to show depth of field
func NewCheckerScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(3, 1.5, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          35.0,
		Aperture:      0.2, // Strong depth of field blur
		FocusDistance: 0.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := newScene("checker", cameraConfig, core.DefaultSamplingConfig())

	checker := material.NewCheckerTexture(
		material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)), // Dark green
		material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)), // White
	)
	ground := s.AddMaterial(material.NewTexturedLambertian(checker))

	// Checker of checkers: red/white cells inside blue cells
	nested := material.NewCheckerTexture(
		material.NewCheckerTexture(
			material.NewSolidColor(core.NewVec3(0.8, 0.1, 0.1)),
			material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
		),
		material.NewSolidColor(core.NewVec3(0.1, 0.2, 0.6)),
	)
	patterned := s.AddMaterial(material.NewTexturedLambertian(nested))

	mirror := s.AddMaterial(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0))
	glass := s.AddMaterial(material.NewDielectric(1.5))

	s.AddSphere(core.NewVec3(0, -1000.5, -1), 1000, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, patterned)
	s.AddSphere(core.NewVec3(-1.1, 0, -1.5), 0.5, mirror)
	s.AddSphere(core.NewVec3(1.1, 0, -0.5), 0.5, glass)

	return s
}
