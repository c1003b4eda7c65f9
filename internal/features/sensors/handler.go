package sensors

import (
	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/config"
	"github.com/carbonsentinel/api/internal/pkg/response"
)

type Handler struct {
	feed *Feed
	cfg  *config.Config
}

func NewHandler(feed *Feed, cfg *config.Config) *Handler {
	return &Handler{feed: feed, cfg: cfg}
}

// GetReadings godoc
// @Summary Live air-quality readings
// @Description Fetch the current telemetry for the configured region; degrades to an empty list when the feed is unavailable
// @Tags sensors
// @Produce json
// @Success 200 {object} response.ListResponse
// @Router /sensors/readings [get]
func (h *Handler) GetReadings(c *gin.Context) {
	readings := h.feed.FetchReadings(c.Request.Context(), h.cfg.FeedRegion, h.cfg.FeedLimit)
	response.List(c, readings, len(readings))
}
