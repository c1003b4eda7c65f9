package identity

import (
	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/pkg/response"
	"github.com/carbonsentinel/api/internal/pkg/token"
)

type Handler struct {
	gate *Gate
}

func NewHandler(gate *Gate) *Handler {
	return &Handler{gate: gate}
}

// CreateSession godoc
// @Summary Sign in
// @Description Exchange a provider ID token for an application session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Provider sign-in result"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/session [post]
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	principal, err := h.gate.SignIn(c.Request.Context(), req.IDToken)
	if err != nil {
		response.IdentityProviderError(c, err.Error())
		return
	}

	sessionToken, err := token.GenerateToken(principal.UID, principal.Email, principal.DisplayName)
	if err != nil {
		response.InternalServerError(c, "Failed to generate session token")
		return
	}

	response.Created(c, SessionResponse{
		Token:     sessionToken,
		Principal: principal,
	})
}

// DeleteSession godoc
// @Summary Sign out
// @Description End the current session and revoke the provider session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/session [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.gate.SignOut(c.Request.Context()); err != nil {
		response.IdentityProviderError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "Signed out"})
}

// Me godoc
// @Summary Current principal
// @Description Return the principal attached to the session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	principal := FromContext(c)
	if principal == nil {
		response.AuthenticationError(c, "No active session")
		return
	}

	response.Success(c, principal)
}
