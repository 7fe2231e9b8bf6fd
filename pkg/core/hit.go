package core

// MaterialID is a stable handle into a scene's materials arena
type MaterialID int

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64    // Parameter t along the ray
	Point    Vec3       // Point of intersection
	Normal   Vec3       // Unit normal, outward for positive radius
	U, V     float64    // Texture coordinates
	Material MaterialID // Material of the hit object
}
