package mapview

import (
	"time"

	"github.com/carbonsentinel/api/internal/pkg/geo"
)

// PointKind tags the origin of a map point so the render surface can style
// pins differently.
type PointKind string

const (
	KindSensor PointKind = "sensor"
	KindReport PointKind = "report"
)

// Point is one renderable map pin.
// @Description Renderable map point tagged with its origin kind
type Point struct {
	Kind     PointKind       `json:"kind" enums:"sensor,report"`
	Label    string          `json:"label" example:"Waste Burn in Kibera"`
	Location geo.Coordinates `json:"location"`

	// Sensor points only.
	Value      *float64   `json:"value,omitempty" example:"38.5"`
	ObservedAt *time.Time `json:"observedAt,omitempty"`

	// Report points only.
	ReportID string `json:"reportId,omitempty"`
	Status   string `json:"status,omitempty" enums:"pending,resolved"`
}
