package identity

import "github.com/gin-gonic/gin"

// Principal is the identity of the acting user as certified by the external
// provider. Absence of a principal (nil) means anonymous use.
type Principal struct {
	UID         string `json:"uid" example:"u8Qx91kFh2VYbR"`
	Email       string `json:"email" example:"warden@nairobi.go.ke"`
	DisplayName string `json:"displayName,omitempty" example:"A. Warden"`
}

// Label returns the best human-readable identifier for the principal.
func (p *Principal) Label() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Email
}

// CreateSessionRequest carries the ID token minted by the provider's
// interactive sign-in on the client.
type CreateSessionRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// SessionResponse is returned after a successful sign-in
type SessionResponse struct {
	Token     string     `json:"token"`
	Principal *Principal `json:"principal"`
}

// FromContext rebuilds the request principal placed in the gin context by the
// auth middleware. Returns nil for anonymous requests.
func FromContext(c *gin.Context) *Principal {
	uid := c.GetString("uid")
	if uid == "" {
		return nil
	}
	return &Principal{
		UID:         uid,
		Email:       c.GetString("email"),
		DisplayName: c.GetString("displayName"),
	}
}
