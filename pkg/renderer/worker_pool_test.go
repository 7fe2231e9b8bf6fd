package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

func TestWorkerPool_ResultsInBandOrder(t *testing.T) {
	const width, height = 12, 9
	s := createRedSphereScene(width, height)
	br := NewBandRenderer(s, integrator.NewPathTracingIntegrator(integrator.DefaultConfig()), width, height, 2)
	bands := NewBandGrid(height, 4)

	results := NewWorkerPool(br, 42, core.NopLogger{}).Run(bands)

	if len(results) != len(bands) {
		t.Fatalf("Expected %d results, got %d", len(bands), len(results))
	}
	for i, result := range results {
		if result.Index != i {
			t.Errorf("Result %d has band index %d", i, result.Index)
		}
		if len(result.Pix) != result.Band.Rows()*width*4 {
			t.Errorf("Band %d: expected %d bytes, got %d", i, result.Band.Rows()*width*4, len(result.Pix))
		}

		// Each band matches a standalone render with the same seed
		expected := br.RenderBand(bands[i], core.NewSeededSampler(bandSeed(42, bands[i])))
		if !bytes.Equal(result.Pix, expected.Pix) {
			t.Errorf("Band %d differs from its standalone render", i)
		}
	}
}
