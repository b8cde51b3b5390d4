package helpers

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body for every failure path,
// including router-level 404s.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}
