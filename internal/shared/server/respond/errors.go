package respond

import (
	"github.com/gin-gonic/gin"

	"resume-checker/internal/shared/telemetry"
)

// ErrorResponse is the wire shape for failures: a single human-readable
// message under "error". Clients branch on status code, not on the body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs and sends a standardized error response. code is a stable
// machine tag that only appears in logs.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
