package mapview

import (
	"github.com/carbonsentinel/api/internal/features/reports"
	"github.com/carbonsentinel/api/internal/features/sensors"
	"github.com/carbonsentinel/api/internal/pkg/geo"
)

// Aggregate merges live readings and citizen reports into one renderable
// point set. Pure function of its inputs: no deduplication, no clustering,
// one output point per located input. Output order is readings in feed
// order followed by reports in store order. Reports without a location are
// excluded here but remain visible in list views.
func Aggregate(readings []sensors.Reading, reportList []reports.Report) []Point {
	points := make([]Point, 0, len(readings)+len(reportList))

	for _, r := range readings {
		observedAt := r.ObservedAt
		point := Point{
			Kind:     KindSensor,
			Label:    r.StationLabel,
			Location: r.Location,
			Value:    r.Value,
		}
		if !observedAt.IsZero() {
			point.ObservedAt = &observedAt
		}
		points = append(points, point)
	}

	for _, r := range reportList {
		if r.Location == nil {
			continue
		}
		points = append(points, Point{
			Kind:     KindReport,
			Label:    r.Title,
			Location: *r.Location,
			ReportID: r.ID,
			Status:   string(r.Status),
		})
	}

	return points
}

// FilterViewport keeps the points inside the bounding box, preserving order.
func FilterViewport(points []Point, vp geo.Viewport) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if vp.Contains(p.Location) {
			out = append(out, p)
		}
	}
	return out
}
