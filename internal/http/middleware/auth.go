package middleware

import (
	"net/http"
	"time"

	"arheb/internal/auth"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authorize verifies the bearer token and stores the verified phone
// number for the handlers. Requests without a valid token are
// rejected.
func Authorize(tokens auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := c.GetHeader("Authorization")
		phone, err := tokens.Verify(credential)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":   false,
				"message":   "Authentication failed: Invalid or missing token",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		c.Set(identityKey, phone)
		c.Next()
	}
}

// GetIdentity extracts the verified phone number set by Authorize.
func GetIdentity(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Get(identityKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
