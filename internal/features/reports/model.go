package reports

import (
	"time"

	"github.com/carbonsentinel/api/internal/pkg/geo"
)

// Status is the triage state of a report. There are exactly two states and
// one bidirectional transition between them; no terminal state exists.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
)

// GuestSubmitter is recorded when no authenticated principal is present at
// submission time. Anonymous submission is a feature, not a fallback.
const GuestSubmitter = "guest"

// Report is a citizen-submitted carbon hotspot record.
// @Description Citizen hotspot report with its triage state
type Report struct {
	ID          string           `json:"id" example:"9f1c1f6c-2c34-4bfa-8e3e-6a55ad07f2d9"`
	Title       string           `json:"title" example:"Waste Burn in Kibera"`
	Description string           `json:"description" example:"Heavy black smoke daily"`
	Location    *geo.Coordinates `json:"location,omitempty"`
	Status      Status           `json:"status" example:"pending" enums:"pending,resolved"`
	SubmittedBy string           `json:"submittedBy" example:"guest"`
	CreatedAt   time.Time        `json:"createdAt" example:"2026-01-01T00:00:00Z"`
}

func (r *Report) clone() *Report {
	cp := *r
	if r.Location != nil {
		loc := *r.Location
		cp.Location = &loc
	}
	return &cp
}

// SubmitReportRequest represents report submission data
// @Description Data required to submit a new hotspot report
type SubmitReportRequest struct {
	Title       string           `json:"title" binding:"required" example:"Waste Burn in Kibera"`
	Description string           `json:"description" binding:"required" example:"Heavy black smoke daily"`
	Location    *geo.Coordinates `json:"location,omitempty"`

	// AutoLocate asks the server to fill in missing coordinates from the
	// configured position source. Lookup failure never blocks submission.
	AutoLocate bool `json:"autoLocate,omitempty"`
}
