package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	MaterialID   int                    `json:"materialId"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	UV           [2]float64             `json:"uv"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Background   [3]float64             `json:"background"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractTextureInfo describes a texture tree
func extractTextureInfo(tex *material.Texture) map[string]interface{} {
	if tex == nil {
		return nil
	}
	switch tex.Kind {
	case material.TextureChecker:
		return map[string]interface{}{
			"type": "checker",
			"odd":  extractTextureInfo(tex.Odd),
			"even": extractTextureInfo(tex.Even),
		}
	default:
		return map[string]interface{}{
			"type":  "constant",
			"color": hexColor(tex.Color),
			"rgb":   vecArray(tex.Color),
		}
	}
}

// extractMaterialInfo extracts detailed material information by kind
func (s *Server) extractMaterialInfo(mat *material.Material, hit core.HitRecord) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch mat.Kind {
	case material.KindLambertian:
		properties["albedo"] = extractTextureInfo(mat.Albedo)
		properties["color"] = hexColor(mat.Albedo.Value(hit.U, hit.V, hit.Point))
	case material.KindMetal:
		properties["albedo"] = vecArray(mat.Tint)
		properties["color"] = hexColor(mat.Tint)
		properties["fuzz"] = mat.Fuzz
	case material.KindDielectric:
		properties["refractiveIndex"] = mat.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
	case material.KindDiffuseLight:
		emission := mat.Emit(hit.U, hit.V, hit.Point)
		properties["emission"] = vecArray(emission)
		properties["texture"] = extractTextureInfo(mat.Emission)
		properties["color"] = hexColor(emission)
	}
	return mat.Kind.String(), properties
}

// inspectPixel casts an unjittered ray through the center of a pixel
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) (core.Ray, core.HitRecord, bool) {
	u := (float64(pixelX) + 0.5) / float64(width)
	v := (float64(height) - (float64(pixelY) + 0.5)) / float64(height)

	// Inspection ignores depth of field, so the lens sample is fixed
	ray := sceneObj.Camera.GetRay(u, v, core.NewSeededSampler(0))
	hit, isHit := sceneObj.Hit(ray, integrator.DefaultConfig().TMin, math.Inf(1))
	return ray, hit, isHit
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	size := s.renderConfig(req, sceneObj).Sampling
	if pixelX < 0 || pixelX >= size.Width || pixelY < 0 || pixelY >= size.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	ray, hit, isHit := inspectPixel(sceneObj, size.Width, size.Height, pixelX, pixelY)
	top, bottom := sceneObj.BackgroundColors()
	response := InspectResponse{
		Hit:        isHit,
		MaterialID: -1,
		Background: vecArray(integrator.BackgroundGradient(ray, top, bottom)),
	}
	if !isHit {
		writeJSON(w, http.StatusOK, response)
		return
	}

	response.MaterialID = int(hit.Material)
	response.Point = vecArray(hit.Point)
	response.Normal = vecArray(hit.Normal)
	response.UV = [2]float64{hit.U, hit.V}
	response.Distance = hit.T
	response.FrontFace = ray.Direction.Dot(hit.Normal) < 0
	response.Properties = map[string]interface{}{
		"geometry": s.extractGeometryInfo(sceneObj.World, hit),
	}
	if mat := sceneObj.Material(hit.Material); mat != nil {
		materialType, materialProps := s.extractMaterialInfo(mat, hit)
		response.MaterialType = materialType
		response.Properties["material"] = materialProps
	}

	writeJSON(w, http.StatusOK, response)
}

// extractGeometryInfo finds the sphere whose surface contains the hit point
func (s *Server) extractGeometryInfo(world *geometry.HittableList, hit core.HitRecord) map[string]interface{} {
	for _, object := range world.Objects {
		if object.Kind != geometry.ShapeSphere || object.Sphere.Material != hit.Material {
			continue
		}
		sphere := object.Sphere
		distance := hit.Point.Subtract(sphere.Center).Length()
		if math.Abs(distance-math.Abs(sphere.Radius)) < 1e-6*math.Max(1, math.Abs(sphere.Radius)) {
			return map[string]interface{}{
				"type":   "sphere",
				"center": vecArray(sphere.Center),
				"radius": sphere.Radius,
			}
		}
	}
	return map[string]interface{}{"type": "unknown"}
}
