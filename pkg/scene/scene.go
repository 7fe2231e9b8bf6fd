package scene

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Scene contains all the elements needed for rendering. It owns the
// materials arena that hit records refer to by handle. A scene is read-only
// once rendering starts.
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	World          *geometry.HittableList
	Materials      []material.Material
	TopColor       core.Vec3 // Background gradient at the zenith
	BottomColor    core.Vec3 // Background gradient at the nadir
	SamplingConfig core.SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// newScene creates an empty scene with the default sky and the given camera
func newScene(name string, cameraConfig geometry.CameraConfig, samplingConfig core.SamplingConfig) *Scene {
	samplingConfig.Width = cameraConfig.Width
	samplingConfig.Height = cameraConfig.Height()

	return &Scene{
		Name:           name,
		Camera:         geometry.NewCamera(cameraConfig),
		World:          geometry.NewHittableList(),
		Materials:      make([]material.Material, 0),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White horizon
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}

// AddMaterial stores a material in the arena and returns its handle
func (s *Scene) AddMaterial(m material.Material) core.MaterialID {
	s.Materials = append(s.Materials, m)
	return core.MaterialID(len(s.Materials) - 1)
}

// AddSphere adds a sphere using an existing material handle
func (s *Scene) AddSphere(center core.Vec3, radius float64, id core.MaterialID) {
	s.World.AddSphere(center, radius, id)
}

// Hit returns the closest intersection with the world
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return s.World.Hit(ray, tMin, tMax)
}

// Material resolves a material handle, returning nil for unknown handles
func (s *Scene) Material(id core.MaterialID) *material.Material {
	if id < 0 || int(id) >= len(s.Materials) {
		return nil
	}
	return &s.Materials[id]
}

// BackgroundColors returns the sky gradient colors
func (s *Scene) BackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetSamplingConfig returns the recommended sampling configuration
func (s *Scene) GetSamplingConfig() core.SamplingConfig {
	return s.SamplingConfig
}

// GetPrimitiveCount returns the total number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.SphereCount()
}

// Validate checks that every sphere refers to a material in the arena
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene %q has no camera", s.Name)
	}
	return s.validateList(s.World)
}

func (s *Scene) validateList(list *geometry.HittableList) error {
	if list == nil {
		return nil
	}
	for i, object := range list.Objects {
		switch object.Kind {
		case geometry.ShapeSphere:
			if s.Material(object.Sphere.Material) == nil {
				return fmt.Errorf("scene %q: object %d references unknown material %d", s.Name, i, object.Sphere.Material)
			}
		case geometry.ShapeList:
			if err := s.validateList(object.List); err != nil {
				return err
			}
		}
	}
	return nil
}
