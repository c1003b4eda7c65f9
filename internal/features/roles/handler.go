package roles

import (
	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/pkg/response"
)

type Handler struct {
	router *Router
}

func NewHandler(router *Router) *Handler {
	return &Handler{router: router}
}

// SetViewRequest carries an explicit navigation intent.
type SetViewRequest struct {
	Mode string `json:"mode" binding:"required" example:"council" enums:"citizen,council"`
}

// GetView godoc
// @Summary Active view mode
// @Tags view
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /view [get]
func (h *Handler) GetView(c *gin.Context) {
	response.Success(c, gin.H{"mode": h.router.Mode()})
}

// SetView godoc
// @Summary Switch view mode
// @Description Switch between the citizen and council surfaces
// @Tags view
// @Accept json
// @Produce json
// @Param request body SetViewRequest true "Navigation intent"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /view [put]
func (h *Handler) SetView(c *gin.Context) {
	var req SetViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	mode, err := ParseViewMode(req.Mode)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	h.router.SetMode(mode)
	response.Success(c, gin.H{"mode": mode})
}
