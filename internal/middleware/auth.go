// ================== internal/middleware/auth.go ==================
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/pkg/response"
	"github.com/carbonsentinel/api/internal/pkg/token"
)

// Auth requires a valid session token and attaches the principal to the
// request context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromHeader(c)
		if !ok {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}
		if claims == nil {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		setPrincipal(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the principal when a valid session token is present
// and lets the request through anonymously otherwise. Routes whose
// authorization lives in the domain layer (report triage) use this so the
// store, not the transport, makes the call.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := claimsFromHeader(c); ok && claims != nil {
			setPrincipal(c, claims)
		}
		c.Next()
	}
}

// claimsFromHeader returns (nil, false) when no header is present and
// (nil, true) when a header carried an invalid token.
func claimsFromHeader(c *gin.Context) (*token.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	// Support both "Bearer <token>" (case-insensitive) and raw token in header
	fields := strings.Fields(authHeader)
	var tokenString string
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		tokenString = fields[1]
	} else {
		tokenString = authHeader
	}

	claims, err := token.ValidateToken(tokenString)
	if err != nil {
		return nil, true
	}
	return claims, true
}

func setPrincipal(c *gin.Context, claims *token.Claims) {
	c.Set("uid", claims.UID)
	c.Set("email", claims.Email)
	c.Set("displayName", claims.DisplayName)
}
