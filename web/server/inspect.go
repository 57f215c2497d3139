package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Color        [3]float64             `json:"color"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// centerSampler always returns 0.5, which removes the camera's pixel jitter
type centerSampler struct{}

func (centerSampler) Get1D() float64 { return 0.5 }

// inspectPixel casts an unjittered ray through the pixel and describes the first surface hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	config := sceneObj.SamplingConfig
	camera := geometry.NewCamera(sceneObj.CameraConfig)
	ray := camera.GetRay(pixelX, pixelY, config.Width, config.Height, centerSampler{})

	hit, ok := sceneObj.Hit(ray)
	if !ok {
		return InspectResponse{Hit: false}
	}

	mat := hit.Material
	return InspectResponse{
		Hit:          true,
		MaterialType: mat.Kind.String(),
		Point:        [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:       [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		Color:        [3]float64{hit.Color.X, hit.Color.Y, hit.Color.Z},
		Distance:     hit.T,
		Properties: map[string]interface{}{
			"albedo":      mat.Albedo,
			"emission":    mat.Emission,
			"prob":        mat.Prob,
			"cosWeighted": mat.CosWeighted,
			"emissive":    mat.IsEmissive(),
		},
	}
}

// handleInspect reports what the camera sees through one pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, err := req.createScene()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	config := sceneObj.SamplingConfig
	x, err := parseIntParam(r.URL.Query(), "x", -1, 0, config.Width-1)
	if err == nil && x < 0 {
		err = fmt.Errorf("x is required")
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	y, err := parseIntParam(r.URL.Query(), "y", -1, 0, config.Height-1)
	if err == nil && y < 0 {
		err = fmt.Errorf("y is required")
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, x, y))
}
