package sensors

import (
	"time"

	"github.com/carbonsentinel/api/internal/pkg/geo"
)

// Reading is one normalized air-quality sample. Readings are replaced
// wholesale on every fetch; no identity persists across fetches.
// @Description Normalized air-quality telemetry sample
type Reading struct {
	StationLabel string          `json:"stationLabel" example:"Nairobi US Embassy"`
	Location     geo.Coordinates `json:"location"`
	Value        *float64        `json:"value" example:"38.5"`
	ObservedAt   time.Time       `json:"observedAt" example:"2026-01-01T00:00:00Z"`
}

// Upstream payload shapes. The feed is schema-less in practice: every field
// must be treated as optional and absence must never crash normalization.
// Pointer values keep "missing" distinct from zero, which is a valid
// pollutant reading.
type feedPayload struct {
	Results []feedRecord `json:"results"`
}

type feedRecord struct {
	Location     string            `json:"location"`
	Coordinates  *feedCoordinates  `json:"coordinates"`
	Measurements []feedMeasurement `json:"measurements"`
	Date         *feedDate         `json:"date"`
}

type feedCoordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type feedMeasurement struct {
	Parameter   string   `json:"parameter"`
	Value       *float64 `json:"value"`
	Unit        string   `json:"unit"`
	LastUpdated string   `json:"lastUpdated"`
}

type feedDate struct {
	UTC   string `json:"utc"`
	Local string `json:"local"`
}
