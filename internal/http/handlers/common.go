package handlers

import (
	"net/http"
	"time"

	"arheb/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Respond sends the standard success envelope the mobile clients
// expect.
func Respond(c *gin.Context, status int, message string, data any) {
	payload := gin.H{
		"success":   true,
		"message":   message,
		"timestamp": timestamp(),
	}
	if data != nil {
		payload["data"] = data
	}
	c.JSON(status, payload)
}

// RespondError sends the standard error payload with request_id
// included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"success":    false,
		"message":    message,
		"request_id": reqID,
		"timestamp":  timestamp(),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "Request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request payload", err)
		return false
	}
	return true
}
