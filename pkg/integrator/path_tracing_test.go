package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// testScene is a minimal Scene backed by a sphere list and a material slice
type testScene struct {
	world       *geometry.HittableList
	materials   []material.Material
	topColor    core.Vec3
	bottomColor core.Vec3
}

func newTestScene(top, bottom core.Vec3) *testScene {
	return &testScene{world: geometry.NewHittableList(), topColor: top, bottomColor: bottom}
}

func (s *testScene) addSphere(center core.Vec3, radius float64, m material.Material) {
	s.materials = append(s.materials, m)
	s.world.AddSphere(center, radius, core.MaterialID(len(s.materials)-1))
}

func (s *testScene) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return s.world.Hit(ray, tMin, tMax)
}

func (s *testScene) Material(id core.MaterialID) *material.Material {
	if id < 0 || int(id) >= len(s.materials) {
		return nil
	}
	return &s.materials[id]
}

func (s *testScene) BackgroundColors() (core.Vec3, core.Vec3) {
	return s.topColor, s.bottomColor
}

var white = core.NewVec3(1, 1, 1)

func TestPathTracing_BackgroundGradient(t *testing.T) {
	top := core.NewVec3(0, 0, 1)
	bottom := core.NewVec3(1, 0, 0)
	sc := newTestScene(top, bottom)
	pt := NewPathTracingIntegrator(DefaultConfig())
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), top},
		{"straight down", core.NewVec3(0, -1, 0), bottom},
		{"horizon", core.NewVec3(0, 0, -1), core.NewVec3(0.5, 0, 0.5)},
		{"unnormalized up", core.NewVec3(0, 7, 0), top},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pt.Trace(core.NewRay(core.Vec3{}, tt.direction), sc, sampler)
			if result.Termination != TerminatedEscaped || result.Bounces != 0 {
				t.Errorf("Expected immediate escape, got %v after %d bounces", result.Termination, result.Bounces)
			}
			if result.Color.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result.Color)
			}
		})
	}
}

func TestPathTracing_RedSphereTintsPaths(t *testing.T) {
	sc := newTestScene(white, white)
	sc.addSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3)))
	pt := NewPathTracingIntegrator(DefaultConfig())
	sampler := core.NewSeededSampler(42)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	for i := 0; i < 200; i++ {
		result := pt.Trace(ray, sc, sampler)
		if result.Termination != TerminatedEscaped {
			t.Fatalf("Single convex sphere under open sky must escape, got %v", result.Termination)
		}
		if result.Bounces < 1 {
			t.Fatalf("Expected at least one bounce, got %d", result.Bounces)
		}
		c := result.Color
		if c.Y != c.Z {
			t.Errorf("Expected equal green and blue, got %v", c)
		}
		if c.X <= c.Y {
			t.Errorf("Expected red to dominate, got %v", c)
		}
		if c.X > 1 || c.Y < 0 {
			t.Errorf("Color out of range: %v", c)
		}
	}
}

func TestPathTracing_MirrorEnclosureHitsDepthLimit(t *testing.T) {
	sc := newTestScene(white, white)
	// Negative radius turns the normals inward so the camera sees a perfect mirror
	sc.addSphere(core.Vec3{}, -10, material.NewMetal(white, 0))

	for _, maxDepth := range []int{0, 1, 5, 50} {
		pt := NewPathTracingIntegrator(Config{MaxDepth: maxDepth})
		result := pt.Trace(core.NewRay(core.Vec3{}, core.NewVec3(0.3, 0.2, -1)), sc, core.NewSeededSampler(3))

		if result.Termination != TerminatedDepthLimit {
			t.Errorf("MaxDepth %d: expected depth-limit, got %v", maxDepth, result.Termination)
		}
		if result.Bounces != maxDepth {
			t.Errorf("MaxDepth %d: expected %d bounces, got %d", maxDepth, maxDepth, result.Bounces)
		}
		if !result.Color.IsZero() {
			t.Errorf("MaxDepth %d: expected black, got %v", maxDepth, result.Color)
		}
	}
}

func TestPathTracing_ZeroDepthIsBlackOnHit(t *testing.T) {
	sc := newTestScene(white, white)
	sc.addSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	pt := NewPathTracingIntegrator(Config{MaxDepth: 0})

	c := pt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), sc, core.NewSeededSampler(42))
	if !c.IsZero() {
		t.Errorf("Expected black for depth 0, got %v", c)
	}
}

func TestPathTracing_Emission(t *testing.T) {
	sc := newTestScene(core.Vec3{}, core.Vec3{})
	emission := core.NewVec3(4, 3, 2)
	sc.addSphere(core.NewVec3(0, 0, -2), 0.5, material.NewDiffuseLight(emission))
	pt := NewPathTracingIntegrator(DefaultConfig())

	result := pt.Trace(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), sc, core.NewSeededSampler(5))
	if result.Termination != TerminatedEmitted {
		t.Fatalf("Expected emitted, got %v", result.Termination)
	}
	if !result.Color.Equals(emission) {
		t.Errorf("Expected %v, got %v", emission, result.Color)
	}
}

func TestPathTracing_UnknownMaterialAbsorbs(t *testing.T) {
	sc := newTestScene(white, white)
	sc.world.AddSphere(core.NewVec3(0, 0, -1), 0.5, core.MaterialID(7))
	pt := NewPathTracingIntegrator(DefaultConfig())

	result := pt.Trace(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), sc, core.NewSeededSampler(5))
	if result.Termination != TerminatedAbsorbed || !result.Color.IsZero() {
		t.Errorf("Expected black absorption, got %v %v", result.Termination, result.Color)
	}
}

func TestPathTracing_ClearGlassPassesBackground(t *testing.T) {
	// Index 1 never reflects by total internal reflection and Schlick gives 0
	// at normal incidence, so a centered ray passes straight through
	sc := newTestScene(white, white)
	sc.addSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDielectric(1.0))
	pt := NewPathTracingIntegrator(DefaultConfig())

	result := pt.Trace(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), sc, core.NewSeededSampler(9))
	if result.Termination != TerminatedEscaped {
		t.Fatalf("Expected escape, got %v", result.Termination)
	}
	if result.Bounces != 2 {
		t.Errorf("Expected 2 bounces through the sphere, got %d", result.Bounces)
	}
	if result.Color.Subtract(white).Length() > 1e-9 {
		t.Errorf("Expected white, got %v", result.Color)
	}
}

func TestNewPathTracingIntegrator_DefaultsTMin(t *testing.T) {
	pt := NewPathTracingIntegrator(Config{MaxDepth: 3})
	if pt.Config().TMin != DefaultConfig().TMin {
		t.Errorf("Expected default TMin, got %f", pt.Config().TMin)
	}
	if pt.Config().MaxDepth != 3 {
		t.Errorf("Expected MaxDepth 3, got %d", pt.Config().MaxDepth)
	}
}

func TestTermination_String(t *testing.T) {
	if TerminatedDepthLimit.String() != "depth-limit" {
		t.Errorf("Unexpected string %q", TerminatedDepthLimit.String())
	}
}
