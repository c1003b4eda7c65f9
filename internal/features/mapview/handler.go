package mapview

import (
	"errors"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/config"
	"github.com/carbonsentinel/api/internal/features/reports"
	"github.com/carbonsentinel/api/internal/features/sensors"
	"github.com/carbonsentinel/api/internal/pkg/geo"
	"github.com/carbonsentinel/api/internal/pkg/response"
)

var (
	errViewportIncomplete = errors.New("viewport requires lat_min, lat_max, lng_min and lng_max")
	errViewportMalformed  = errors.New("viewport edges must be numbers")
)

type Handler struct {
	store *reports.Store
	feed  *sensors.Feed
	cfg   *config.Config
}

func NewHandler(store *reports.Store, feed *sensors.Feed, cfg *config.Config) *Handler {
	return &Handler{store: store, feed: feed, cfg: cfg}
}

// GetPoints godoc
// @Summary Map point set
// @Description Live sensor readings merged with located citizen reports, optionally clipped to a viewport
// @Tags map
// @Produce json
// @Param lat_min query number false "Viewport south edge"
// @Param lat_max query number false "Viewport north edge"
// @Param lng_min query number false "Viewport west edge"
// @Param lng_max query number false "Viewport east edge"
// @Success 200 {object} response.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /map/points [get]
func (h *Handler) GetPoints(c *gin.Context) {
	vp, hasViewport, err := parseViewport(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	readings := h.feed.FetchReadings(c.Request.Context(), h.cfg.FeedRegion, h.cfg.FeedLimit)
	points := Aggregate(readings, slices.Collect(h.store.List()))

	if hasViewport {
		points = FilterViewport(points, vp)
	}

	response.List(c, points, len(points))
}

// parseViewport reads the optional bounding-box query. Either all four
// edges are present or none are.
func parseViewport(c *gin.Context) (geo.Viewport, bool, error) {
	keys := []string{"lat_min", "lat_max", "lng_min", "lng_max"}

	var present int
	for _, k := range keys {
		if c.Query(k) != "" {
			present++
		}
	}
	if present == 0 {
		return geo.Viewport{}, false, nil
	}
	if present != len(keys) {
		return geo.Viewport{}, false, errViewportIncomplete
	}

	values := make([]float64, len(keys))
	for i, k := range keys {
		v, err := strconv.ParseFloat(c.Query(k), 64)
		if err != nil {
			return geo.Viewport{}, false, errViewportMalformed
		}
		values[i] = v
	}

	return geo.Viewport{
		LatMin: values[0],
		LatMax: values[1],
		LngMin: values[2],
		LngMax: values[3],
	}, true, nil
}
