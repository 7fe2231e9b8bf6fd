package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// HittableList is an ordered aggregate of hittables. Intersection is a
// linear scan; order only matters for hits at exactly the same t.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// AddSphere appends a sphere to the list
func (l *HittableList) AddSphere(center core.Vec3, radius float64, material core.MaterialID) {
	l.Add(FromSphere(NewSphere(center, radius, material)))
}

// Len returns the number of direct children
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// SphereCount returns the number of spheres, including nested lists
func (l *HittableList) SphereCount() int {
	count := 0
	for _, object := range l.Objects {
		switch object.Kind {
		case ShapeSphere:
			count++
		case ShapeList:
			if object.List != nil {
				count += object.List.SphereCount()
			}
		}
	}
	return count
}

// Hit returns the closest intersection among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closestHit core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
