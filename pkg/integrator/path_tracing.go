package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Config controls path construction
type Config struct {
	MaxDepth int     // Scatter events allowed before a path is cut to black
	TMin     float64 // Self-intersection offset for secondary rays
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth: 50,
		TMin:     0.001,
	}
}

// Termination records why a path stopped
type Termination int

const (
	TerminatedEscaped    Termination = iota // left the scene, picked up the background
	TerminatedAbsorbed                      // hit a material that did not scatter
	TerminatedEmitted                       // hit a light
	TerminatedDepthLimit                    // still scattering at the depth limit
)

// String returns a short name for the termination reason
func (t Termination) String() string {
	switch t {
	case TerminatedEscaped:
		return "escaped"
	case TerminatedAbsorbed:
		return "absorbed"
	case TerminatedEmitted:
		return "emitted"
	case TerminatedDepthLimit:
		return "depth-limit"
	default:
		return fmt.Sprintf("termination(%d)", int(t))
	}
}

// PathResult is the outcome of tracing a single camera ray
type PathResult struct {
	Color       core.Vec3
	Bounces     int // number of scatter events along the path
	Termination Termination
}

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	if config.TMin <= 0 {
		config.TMin = DefaultConfig().TMin
	}
	return &PathTracingIntegrator{
		config: config,
	}
}

// Config returns the integrator configuration
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, scene, sampler).Color
}

// Trace follows a ray through the scene until it escapes, is absorbed, hits
// a light or exceeds the depth limit. Each scatter multiplies the running
// throughput by the material attenuation.
func (pt *PathTracingIntegrator) Trace(ray core.Ray, scene Scene, sampler core.Sampler) PathResult {
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; ; depth++ {
		hit, isHit := scene.Hit(ray, pt.config.TMin, math.Inf(1))
		if !isHit {
			return PathResult{
				Color:       throughput.MultiplyVec(pt.background(ray, scene)),
				Bounces:     depth,
				Termination: TerminatedEscaped,
			}
		}

		mat := scene.Material(hit.Material)
		if mat == nil {
			return PathResult{Bounces: depth, Termination: TerminatedAbsorbed}
		}

		scatter, didScatter := mat.Scatter(ray, hit, sampler)
		if !didScatter {
			result := PathResult{Bounces: depth, Termination: TerminatedAbsorbed}
			if mat.Kind == material.KindDiffuseLight {
				result.Color = throughput.MultiplyVec(mat.Emit(hit.U, hit.V, hit.Point))
				result.Termination = TerminatedEmitted
			}
			return result
		}

		if depth >= pt.config.MaxDepth {
			return PathResult{Bounces: depth, Termination: TerminatedDepthLimit}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// background returns the sky color for an escaped ray
func (pt *PathTracingIntegrator) background(ray core.Ray, scene Scene) core.Vec3 {
	topColor, bottomColor := scene.BackgroundColors()
	return BackgroundGradient(ray, topColor, bottomColor)
}

// BackgroundGradient blends from bottomColor to topColor by the ray's
// normalized y component
func BackgroundGradient(ray core.Ray, topColor, bottomColor core.Vec3) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return bottomColor.Lerp(topColor, t)
}
