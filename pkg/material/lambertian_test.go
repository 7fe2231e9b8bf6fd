package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.3, 0.3)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{
		Point:  core.NewVec3(1, 2, 3),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(1, 2, 5), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Errorf("Scattered ray should start at hit point, got %v", scatter.Scattered.Origin)
		}

		// normal + point inside the unit sphere stays within distance 1 of the normal
		offset := scatter.Scattered.Direction.Subtract(normal)
		if offset.Length() >= 1.0 {
			t.Errorf("Scatter direction %v not within unit sphere around normal", scatter.Scattered.Direction)
		}

		if !scatter.Attenuation.Equals(albedo) {
			t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
	}
}

func TestLambertian_CenteredSampleFollowsNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	normal := core.NewVec3(0, 1, 0)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}

	scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, centeredSampler(0))
	if !scatter.Scattered.Direction.Equals(normal) {
		t.Errorf("Expected direction %v, got %v", normal, scatter.Scattered.Direction)
	}
}

func TestLambertian_SamplesTextureAtHit(t *testing.T) {
	odd := core.NewVec3(1, 0, 0)
	even := core.NewVec3(0, 1, 0)
	lambertian := NewTexturedLambertian(NewCheckerTexture(NewSolidColor(odd), NewSolidColor(even)))

	q := math.Pi / 20
	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"even cell", core.NewVec3(q, q, q), even},
		{"odd cell", core.NewVec3(-q, q, q), odd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := core.HitRecord{Point: tt.point, Normal: core.NewVec3(0, 1, 0)}
			scatter, _ := lambertian.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), hit, centeredSampler(0))
			if !scatter.Attenuation.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, scatter.Attenuation)
			}
		})
	}
}

func TestLambertian_DoesNotEmit(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	if got := lambertian.Emit(0.5, 0.5, core.Vec3{}); !got.IsZero() {
		t.Errorf("Lambertian should not emit, got %v", got)
	}
}
