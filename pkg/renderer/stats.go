package renderer

import (
	"image"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	TotalBounces int           // Scatter events across all paths
	Bands        int           // Number of bands merged into the image
	Escaped      int           // Paths that reached the background
	Absorbed     int           // Paths absorbed by a surface
	Emitted      int           // Paths that ended on a light
	DepthLimited int           // Paths cut off at the depth limit
	Duration     time.Duration // Wall time of the render
}

// record counts a finished path
func (s *RenderStats) record(result integrator.PathResult) {
	s.TotalSamples++
	s.TotalBounces += result.Bounces
	switch result.Termination {
	case integrator.TerminatedEscaped:
		s.Escaped++
	case integrator.TerminatedAbsorbed:
		s.Absorbed++
	case integrator.TerminatedEmitted:
		s.Emitted++
	case integrator.TerminatedDepthLimit:
		s.DepthLimited++
	}
}

// Merge adds the counters of other into s. Duration is left untouched since
// bands run concurrently.
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.TotalBounces += other.TotalBounces
	s.Bands += other.Bands
	s.Escaped += other.Escaped
	s.Absorbed += other.Absorbed
	s.Emitted += other.Emitted
	s.DepthLimited += other.DepthLimited
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// AverageBounces returns the mean path length in scatter events
func (s RenderStats) AverageBounces() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.TotalBounces) / float64(s.TotalSamples)
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean perceptual luminance of an image,
// treating 8-bit channels as values in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixelCount := bounds.Dx() * bounds.Dy()
	if pixelCount == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += core.NewVec3(float64(c.R), float64(c.G), float64(c.B)).Multiply(1.0 / 255).Luminance()
		}
	}
	return total / float64(pixelCount)
}
