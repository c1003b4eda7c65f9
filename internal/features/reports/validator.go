package reports

import (
	"errors"

	"github.com/carbonsentinel/api/internal/pkg/validator"
)

// ValidateSubmitReport rejects payloads the store would refuse anyway, so
// the caller gets a field-level message before any work happens.
func ValidateSubmitReport(req *SubmitReportRequest) error {
	if !validator.IsNonBlank(req.Title) {
		return errors.New("Title is required")
	}
	if !validator.IsNonBlank(req.Description) {
		return errors.New("Description is required")
	}
	if req.Location != nil {
		if !validator.IsValidLatitude(req.Location.Latitude) {
			return errors.New("Latitude must be between -90 and 90")
		}
		if !validator.IsValidLongitude(req.Location.Longitude) {
			return errors.New("Longitude must be between -180 and 180")
		}
	}
	return nil
}
