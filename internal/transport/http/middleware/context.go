package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/spyojana/subsidy-portal/internal/infra/security"
)

const (
	// RequestIDHeader is the HTTP header carrying the correlation identifier.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key for the correlation identifier.
	RequestIDKey = "request_id"
	// UserIDKey is the gin context key for the authenticated admin ID.
	UserIDKey = "user_id"
	// ClaimsKey is the gin context key for the parsed token claims.
	ClaimsKey = "claims"
)

// ErrorResponse mirrors handlers.ErrorResponse for responses emitted before
// a handler runs.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func newErrorResponse(c *gin.Context, msg string) ErrorResponse {
	return ErrorResponse{
		Error:     msg,
		RequestID: GetRequestID(c),
	}
}

// GetRequestID retrieves the correlation identifier set by RequestID.
func GetRequestID(c *gin.Context) string {
	if v, exists := c.Get(RequestIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// GetAuthenticatedUserID retrieves the admin ID stored by RequireAuth.
func GetAuthenticatedUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// GetClaims retrieves the full token claims stored by RequireAuth.
func GetClaims(c *gin.Context) (*security.AccessTokenClaims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*security.AccessTokenClaims)
	return claims, ok
}
