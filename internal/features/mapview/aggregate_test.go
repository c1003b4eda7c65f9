package mapview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carbonsentinel/api/internal/features/reports"
	"github.com/carbonsentinel/api/internal/features/sensors"
	"github.com/carbonsentinel/api/internal/pkg/geo"
)

func pm25(v float64) *float64 { return &v }

func sampleReadings() []sensors.Reading {
	return []sensors.Reading{
		{
			StationLabel: "Nairobi US Embassy",
			Location:     geo.Coordinates{Latitude: -1.2921, Longitude: 36.8219},
			Value:        pm25(38.5),
			ObservedAt:   time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC),
		},
		{
			StationLabel: "Industrial Area",
			Location:     geo.Coordinates{Latitude: -1.31, Longitude: 36.85},
		},
	}
}

func sampleReports() []reports.Report {
	return []reports.Report{
		{
			ID:       "r1",
			Title:    "Waste Burn in Kibera",
			Location: &geo.Coordinates{Latitude: -1.28, Longitude: 36.82},
			Status:   reports.StatusPending,
		},
		{
			ID:     "r2",
			Title:  "No location report",
			Status: reports.StatusResolved,
		},
		{
			ID:       "r3",
			Title:    "Quarry dust",
			Location: &geo.Coordinates{Latitude: -1.35, Longitude: 36.90},
			Status:   reports.StatusResolved,
		},
	}
}

func TestAggregate_LengthProperty(t *testing.T) {
	points := Aggregate(sampleReadings(), sampleReports())

	// located readings + located reports, nothing else
	require.Len(t, points, 4)
	for _, p := range points {
		require.NotEqual(t, "No location report", p.Label)
	}
}

func TestAggregate_Order(t *testing.T) {
	points := Aggregate(sampleReadings(), sampleReports())

	kinds := make([]PointKind, len(points))
	for i, p := range points {
		kinds[i] = p.Kind
	}
	require.Equal(t, []PointKind{KindSensor, KindSensor, KindReport, KindReport}, kinds)

	require.Equal(t, "Nairobi US Embassy", points[0].Label)
	require.Equal(t, "Industrial Area", points[1].Label)
	require.Equal(t, "Waste Burn in Kibera", points[2].Label)
	require.Equal(t, "Quarry dust", points[3].Label)
}

func TestAggregate_PointFields(t *testing.T) {
	points := Aggregate(sampleReadings(), sampleReports())

	sensor := points[0]
	require.Equal(t, KindSensor, sensor.Kind)
	require.NotNil(t, sensor.Value)
	require.Equal(t, 38.5, *sensor.Value)
	require.NotNil(t, sensor.ObservedAt)
	require.Empty(t, sensor.ReportID)

	// A reading with no measurement keeps nil, and no timestamp is invented.
	require.Nil(t, points[1].Value)
	require.Nil(t, points[1].ObservedAt)

	report := points[2]
	require.Equal(t, KindReport, report.Kind)
	require.Equal(t, "r1", report.ReportID)
	require.Equal(t, "pending", report.Status)
	require.Nil(t, report.Value)
}

func TestAggregate_EmptyFeed(t *testing.T) {
	// Feed down: map still renders with report pins only.
	points := Aggregate([]sensors.Reading{}, sampleReports())

	require.Len(t, points, 2)
	for _, p := range points {
		require.Equal(t, KindReport, p.Kind)
	}
}

func TestAggregate_EmptyInputs(t *testing.T) {
	points := Aggregate(nil, nil)
	require.NotNil(t, points)
	require.Len(t, points, 0)
}

func TestFilterViewport(t *testing.T) {
	points := Aggregate(sampleReadings(), sampleReports())

	// Tight box around central Nairobi keeps the embassy and the Kibera pin.
	vp := geo.Viewport{LatMin: -1.30, LatMax: -1.25, LngMin: 36.80, LngMax: 36.84}
	inside := FilterViewport(points, vp)

	require.Len(t, inside, 2)
	require.Equal(t, "Nairobi US Embassy", inside[0].Label)
	require.Equal(t, "Waste Burn in Kibera", inside[1].Label)
}
