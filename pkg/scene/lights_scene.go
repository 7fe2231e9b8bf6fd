package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewLightsScene creates a night scene lit only by emissive spheres
func NewLightsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(0, 1, 4),
		LookAt:        core.NewVec3(0, 0.3, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.0,
		FocusDistance: 0.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	samplingConfig := core.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 400 // Small lights need many samples to converge

	s := newScene("lights", cameraConfig, samplingConfig)

	// No sky: every photon comes from a light
	s.TopColor = core.Vec3{}
	s.BottomColor = core.Vec3{}

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	red := s.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	steel := s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.7, 0.75), 0.05))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	warmLight := s.AddMaterial(material.NewDiffuseLight(core.NewVec3(8, 7, 5)))
	stripedLight := s.AddMaterial(material.NewTexturedDiffuseLight(material.NewCheckerTexture(
		material.NewSolidColor(core.NewVec3(0, 0, 0)),
		material.NewSolidColor(core.NewVec3(2, 3, 6)),
	)))

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)
	s.AddSphere(core.NewVec3(-1.2, 0.5, -1), 0.5, red)
	s.AddSphere(core.NewVec3(0, 0.5, -1.5), 0.5, steel)
	s.AddSphere(core.NewVec3(1.2, 0.5, -1), 0.5, glass)
	s.AddSphere(core.NewVec3(0, 3, -1), 0.8, warmLight)
	s.AddSphere(core.NewVec3(2.5, 1.2, -2.5), 0.6, stripedLight)

	return s
}
