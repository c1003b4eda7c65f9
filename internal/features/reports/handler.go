package reports

import (
	"errors"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/features/identity"
	"github.com/carbonsentinel/api/internal/features/location"
	"github.com/carbonsentinel/api/internal/pkg/logger"
	"github.com/carbonsentinel/api/internal/pkg/response"
	apperrors "github.com/carbonsentinel/api/pkg/errors"
)

type Handler struct {
	store   *Store
	locator *location.Resolver
	log     *logger.Logger
}

// NewHandler wires the store and an optional position resolver; locator may
// be nil when no server-side lookup source is configured.
func NewHandler(store *Store, locator *location.Resolver, log *logger.Logger) *Handler {
	return &Handler{store: store, locator: locator, log: log}
}

// Submit godoc
// @Summary Submit a hotspot report
// @Description Submit a new carbon hotspot report; anonymous submissions are attributed to "guest"
// @Tags reports
// @Accept json
// @Produce json
// @Param request body SubmitReportRequest true "Report submission data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateSubmitReport(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	input := SubmitInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	}

	// A failed lookup degrades to a location-less report, never an error.
	if input.Location == nil && req.AutoLocate && h.locator != nil {
		coords, err := h.locator.Resolve(c.Request.Context())
		if err != nil {
			h.log.Warn("position lookup failed, submitting without location: %v", err)
		} else {
			input.Location = coords
		}
	}

	report, err := h.store.Submit(input, identity.FromContext(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			response.ValidationFailed(c, err.Error())
			return
		}
		response.InternalServerError(c, "Failed to submit report")
		return
	}

	response.Created(c, report)
}

// List godoc
// @Summary List reports
// @Description All reports in insertion order, pending and resolved alike
// @Tags reports
// @Produce json
// @Success 200 {object} response.ListResponse
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	all := slices.Collect(h.store.List())
	if all == nil {
		all = []Report{}
	}
	response.List(c, all, h.store.Len())
}

// ToggleStatus godoc
// @Summary Toggle report triage status
// @Description Flip a report between pending and resolved; requires the council capability
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/status [patch]
func (h *Handler) ToggleStatus(c *gin.Context) {
	report, err := h.store.ToggleStatus(c.Param("id"), identity.FromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.AuthorizationError(c, err.Error())
		case errors.Is(err, apperrors.ErrNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalServerError(c, "Failed to update report")
		}
		return
	}

	response.Success(c, report)
}
