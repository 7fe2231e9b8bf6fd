package renderer

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// ErrInvalidConfig is returned when a render configuration cannot be used
var ErrInvalidConfig = errors.New("invalid render config")

// Scene interface to avoid circular imports
type Scene interface {
	integrator.Scene
	GetCamera() *geometry.Camera
}

// validator is implemented by scenes that can check their own wiring
type validator interface {
	Validate() error
}

// RenderConfig contains configuration for a render
type RenderConfig struct {
	Sampling core.SamplingConfig
	Bands    int   // Number of row bands (0 = use CPU count)
	Seed     int64 // Base seed; band i samples with Seed+i
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Sampling: core.DefaultSamplingConfig(),
		Bands:    0,
		Seed:     42,
	}
}

// Validate checks the configuration and resolves automatic values
func (c RenderConfig) Validate() (RenderConfig, error) {
	s := c.Sampling
	if s.Width <= 0 || s.Height <= 0 {
		return c, fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, s.Width, s.Height)
	}
	if s.SamplesPerPixel <= 0 {
		return c, fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, s.SamplesPerPixel)
	}
	if s.MaxDepth < 0 {
		return c, fmt.Errorf("%w: max depth %d", ErrInvalidConfig, s.MaxDepth)
	}
	if c.Bands < 0 {
		return c, fmt.Errorf("%w: bands %d", ErrInvalidConfig, c.Bands)
	}
	if c.Bands == 0 {
		c.Bands = runtime.NumCPU()
	}
	c.Bands = min(c.Bands, s.Height)
	return c, nil
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

var printer = message.NewPrinter(language.English)

// formatCount renders n with digit grouping, e.g. 1,250,000
func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// Raytracer renders a scene by splitting the image into bands
type Raytracer struct {
	scene    Scene
	config   RenderConfig
	bands    []Band
	renderer *BandRenderer
	logger   core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	config, err := config.Validate()
	if err != nil {
		return nil, err
	}
	if scene == nil || scene.GetCamera() == nil {
		return nil, fmt.Errorf("%w: scene has no camera", ErrInvalidConfig)
	}
	if v, ok := scene.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	pathTracer := integrator.NewPathTracingIntegrator(integrator.Config{
		MaxDepth: config.Sampling.MaxDepth,
	})

	return &Raytracer{
		scene:    scene,
		config:   config,
		bands:    NewBandGrid(config.Sampling.Height, config.Bands),
		renderer: NewBandRenderer(scene, pathTracer, config.Sampling.Width, config.Sampling.Height, config.Sampling.SamplesPerPixel),
		logger:   logger,
	}, nil
}

// Config returns the resolved render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Bands returns the band partition used by this raytracer
func (rt *Raytracer) Bands() []Band {
	return rt.bands
}

// Render renders all bands in parallel, one goroutine per band
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	rt.logStart("parallel")
	start := time.Now()

	pool := NewWorkerPool(rt.renderer, rt.config.Seed, rt.logger)
	img, stats := rt.merge(pool.Run(rt.bands))

	stats.Duration = time.Since(start)
	rt.logDone(stats)
	return img, stats
}

// RenderSequential renders the same bands one after another on the calling
// goroutine. The result is identical to Render.
func (rt *Raytracer) RenderSequential() (*image.RGBA, RenderStats) {
	rt.logStart("sequential")
	start := time.Now()

	results := make([]BandResult, 0, len(rt.bands))
	for _, band := range rt.bands {
		sampler := core.NewSeededSampler(bandSeed(rt.config.Seed, band))
		results = append(results, rt.renderer.RenderBand(band, sampler))
	}
	img, stats := rt.merge(results)

	stats.Duration = time.Since(start)
	rt.logDone(stats)
	return img, stats
}

// merge concatenates band pixels in index order into the final image
func (rt *Raytracer) merge(results []BandResult) (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.config.Sampling.Width, rt.config.Sampling.Height))
	var stats RenderStats

	offset := 0
	for _, result := range results {
		offset += copy(img.Pix[offset:], result.Pix)
		stats.Merge(result.Stats)
	}
	return img, stats
}

func (rt *Raytracer) logStart(mode string) {
	s := rt.config.Sampling
	rt.logger.Printf("Rendering %dx%d, %d samples/pixel, depth %d, %d bands (%s)...\n",
		s.Width, s.Height, s.SamplesPerPixel, s.MaxDepth, len(rt.bands), mode)
}

func (rt *Raytracer) logDone(stats RenderStats) {
	rt.logger.Printf("Render completed in %v: %s rays, %.2f bounces/ray (escaped %s, absorbed %s, emitted %s, depth-limited %s)\n",
		stats.Duration.Round(time.Millisecond), formatCount(stats.TotalSamples), stats.AverageBounces(),
		formatCount(stats.Escaped), formatCount(stats.Absorbed), formatCount(stats.Emitted), formatCount(stats.DepthLimited))
}
