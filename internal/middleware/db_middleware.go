package middleware

import (
	"github.com/asistio/asistio-api/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}

func UploaderMiddleware(uploader storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("uploader", uploader)
		c.Next()
	}
}

func GetUploader(c *gin.Context) storage.Uploader {
	uploader, exists := c.Get("uploader")
	if !exists {
		return nil
	}
	return uploader.(storage.Uploader)
}
