// Package maps turns derived itinerary points into a GeoJSON document
// the Leaflet front end draws as a layer. The widget owns marker
// presentation; the planner owns when rendering happens.
package maps

import (
	"encoding/json"
	"sync"

	"github.com/ukydev/wayfarer/internal/models"
)

type geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // lng, lat per GeoJSON
}

type feature struct {
	Type       string            `json:"type"`
	Geometry   geometry          `json:"geometry"`
	Properties map[string]string `json:"properties"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

// FeatureCollection encodes labeled points as a GeoJSON
// FeatureCollection, preserving their order.
func FeatureCollection(points []models.MapPoint) ([]byte, error) {
	fc := featureCollection{Type: "FeatureCollection", Features: []feature{}}
	for _, p := range points {
		fc.Features = append(fc.Features, feature{
			Type:       "Feature",
			Geometry:   geometry{Type: "Point", Coordinates: [2]float64{p.Lng, p.Lat}},
			Properties: map[string]string{"label": p.Label},
		})
	}
	return json.Marshal(fc)
}

// Widget is the drawing surface the planner renders into. It keeps the
// last rendered document so the map endpoint can serve it without
// recomputing.
type Widget struct {
	mu      sync.Mutex
	current []byte
}

// NewWidget creates a widget with an empty feature collection.
func NewWidget() *Widget {
	doc, _ := FeatureCollection(nil)
	return &Widget{current: doc}
}

// RenderMap replaces the widget's document with the given points. A
// point list with no entries clears the map rather than erroring.
func (w *Widget) RenderMap(points []models.MapPoint) {
	doc, err := FeatureCollection(points)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.current = doc
	w.mu.Unlock()
}

// Current returns the last rendered GeoJSON document.
func (w *Widget) Current() []byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]byte, len(w.current))
	copy(out, w.current)
	return out
}
