package integrator

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Scene is the read-only view of the world an integrator traces against
type Scene interface {
	// Hit returns the closest intersection in the open interval (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool)
	// Material resolves a handle from a hit record; nil for unknown handles
	Material(id core.MaterialID) *material.Material
	// BackgroundColors returns the sky gradient used for escaped rays
	BackgroundColors() (topColor, bottomColor core.Vec3)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along a camera ray
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3
	// Trace follows one path and reports its color and how it ended
	Trace(ray core.Ray, scene Scene, sampler core.Sampler) PathResult
}

var _ Integrator = (*PathTracingIntegrator)(nil)
