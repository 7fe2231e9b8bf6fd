package renderer

import (
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// flatIntegrator returns the same path for every ray
type flatIntegrator struct {
	result integrator.PathResult
	calls  int
}

func (f *flatIntegrator) RayColor(ray core.Ray, scene integrator.Scene, sampler core.Sampler) core.Vec3 {
	return f.Trace(ray, scene, sampler).Color
}

func (f *flatIntegrator) Trace(ray core.Ray, scene integrator.Scene, sampler core.Sampler) integrator.PathResult {
	f.calls++
	return f.result
}

func TestBandRenderer_UsesIntegrator(t *testing.T) {
	const width, height, samples = 4, 3, 2
	flat := &flatIntegrator{result: integrator.PathResult{
		Color:       core.NewVec3(0.25, 1, 0),
		Bounces:     3,
		Termination: integrator.TerminatedEmitted,
	}}
	br := NewBandRenderer(createRedSphereScene(width, height), flat, width, height, samples)

	band := Band{Index: 0, StartRow: 1, EndRow: 3}
	result := br.RenderBand(band, core.NewSeededSampler(1))

	pixels := band.Rows() * width
	if flat.calls != pixels*samples {
		t.Errorf("Expected %d traced paths, got %d", pixels*samples, flat.calls)
	}
	for p := 0; p < pixels; p++ {
		r, g, b := result.Pix[p*4], result.Pix[p*4+1], result.Pix[p*4+2]
		if r != 127 || g != 255 || b != 0 {
			t.Fatalf("Pixel %d: expected (127, 255, 0), got (%d, %d, %d)", p, r, g, b)
		}
	}
	if result.Stats.Emitted != pixels*samples || result.Stats.TotalBounces != 3*pixels*samples {
		t.Errorf("Unexpected stats %+v", result.Stats)
	}
}
