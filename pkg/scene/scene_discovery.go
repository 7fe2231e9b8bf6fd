package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// ErrUnknownScene is returned when a scene name has no registered builder
var ErrUnknownScene = errors.New("unknown scene")

// Builder constructs a scene, applying optional camera overrides
type Builder func(cameraOverrides ...geometry.CameraConfig) *Scene

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by New
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Width       int    `json:"width"`       // Default image width
	Height      int    `json:"height"`      // Default image height
	Samples     int    `json:"samples"`     // Recommended samples per pixel
	MaxDepth    int    `json:"maxDepth"`    // Recommended path depth
	Spheres     int    `json:"spheres"`     // Number of spheres in the world
}

type registration struct {
	build       Builder
	description string
}

var registry = map[string]registration{
	"default":    {NewDefaultScene, "Red diffuse, gold metal and hollow glass spheres on a yellow ground"},
	"checker":    {NewCheckerScene, "Checker textured spheres with depth of field"},
	"lights":     {NewLightsScene, "Night scene lit only by emissive spheres"},
	"spheregrid": {NewSphereGridScene, "10x10 grid of OKLCH colored diffuse, metal and glass spheres"},
}

// New builds the named scene, applying optional camera overrides
func New(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	reg, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return reg.build(cameraOverrides...), nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List builds every registered scene and returns its metadata, sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, name := range Names() {
		reg := registry[name]
		s := reg.build()
		infos = append(infos, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: reg.description,
			Width:       s.SamplingConfig.Width,
			Height:      s.SamplingConfig.Height,
			Samples:     s.SamplingConfig.SamplesPerPixel,
			MaxDepth:    s.SamplingConfig.MaxDepth,
			Spheres:     s.GetPrimitiveCount(),
		})
	}
	return infos
}

// titleCase converts a filename-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
