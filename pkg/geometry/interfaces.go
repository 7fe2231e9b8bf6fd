package geometry

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ShapeKind identifies the hittable variant
type ShapeKind int

const (
	ShapeList ShapeKind = iota
	ShapeSphere
)

// String returns the lowercase shape name
func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	case ShapeList:
		return "list"
	default:
		return fmt.Sprintf("shape(%d)", int(k))
	}
}

// Hittable is anything a ray can hit: a single sphere or a nested list.
// The zero value is an empty list.
type Hittable struct {
	Kind   ShapeKind
	Sphere Sphere        // ShapeSphere
	List   *HittableList // ShapeList
}

// FromSphere wraps a sphere as a hittable
func FromSphere(s Sphere) Hittable {
	return Hittable{Kind: ShapeSphere, Sphere: s}
}

// FromList wraps a list as a hittable
func FromList(l *HittableList) Hittable {
	return Hittable{Kind: ShapeList, List: l}
}

// Hit tests the ray against the wrapped shape within the open interval (tMin, tMax)
func (h Hittable) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	switch h.Kind {
	case ShapeSphere:
		return h.Sphere.Hit(ray, tMin, tMax)
	case ShapeList:
		if h.List == nil {
			return core.HitRecord{}, false
		}
		return h.List.Hit(ray, tMin, tMax)
	default:
		return core.HitRecord{}, false
	}
}
