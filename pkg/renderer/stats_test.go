package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red, green, blue and black: the luminance weights sum to one, so the
	// mean is a quarter
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	avgLum := CalculateAverageLuminance(img)
	if avgLum < 0.9999 || avgLum > 1.0001 {
		t.Errorf("Expected average luminosity 1.0, got %f", avgLum)
	}
}

func TestRenderStats_RecordAndMerge(t *testing.T) {
	var a, b RenderStats
	a.record(integrator.PathResult{Bounces: 3, Termination: integrator.TerminatedEscaped})
	a.record(integrator.PathResult{Bounces: 50, Termination: integrator.TerminatedDepthLimit})
	b.record(integrator.PathResult{Bounces: 1, Termination: integrator.TerminatedEmitted})
	b.record(integrator.PathResult{Bounces: 0, Termination: integrator.TerminatedAbsorbed})
	a.TotalPixels, b.TotalPixels = 1, 1
	a.Bands, b.Bands = 1, 1

	a.Merge(b)

	expected := RenderStats{
		TotalPixels:  2,
		TotalSamples: 4,
		TotalBounces: 54,
		Bands:        2,
		Escaped:      1,
		Absorbed:     1,
		Emitted:      1,
		DepthLimited: 1,
	}
	if a != expected {
		t.Errorf("Expected %+v, got %+v", expected, a)
	}
	if a.AverageSamples() != 2 {
		t.Errorf("Expected 2 samples per pixel, got %f", a.AverageSamples())
	}
	if a.AverageBounces() != 13.5 {
		t.Errorf("Expected 13.5 bounces per ray, got %f", a.AverageBounces())
	}
}

func TestPixelStats_GetColor(t *testing.T) {
	var ps PixelStats
	if !ps.GetColor().IsZero() {
		t.Error("Expected black for a pixel without samples")
	}
	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	if !ps.GetColor().Equals(core.NewVec3(0.5, 0.5, 0)) {
		t.Errorf("Expected average (0.5,0.5,0), got %v", ps.GetColor())
	}
}
