package handlers

import (
	"net/http"

	"github.com/asistio/asistio-api/internal/models"
	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Asist.io event check-in API",
		"endpoints": gin.H{
			"events":          "/events",
			"event":           "/events/:id",
			"attendees":       "/events/:id/attendees",
			"attendee":        "/attendees/:id",
			"checkin":         "/attendees/:id/checkin",
			"classifications": "/classifications",
		},
	})
}

func ListClassifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"classifications": models.Classifications(),
	})
}
