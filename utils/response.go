package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Envelope is the JSON body every bid service response is wrapped in.
// Data is set on success, Error on failure.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}

// AbortWithError sends a structured error response and stops the handler chain
func AbortWithError(c *gin.Context, status int, err error, message string) {
	JSONError(c, status, err, message)
	c.Abort()
}
