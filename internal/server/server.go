package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/asistio/asistio-api/config"
	"github.com/asistio/asistio-api/internal/handlers"
	"github.com/asistio/asistio-api/internal/helpers"
	"github.com/asistio/asistio-api/internal/middleware"
	"github.com/asistio/asistio-api/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	s3Cfg, err := config.LoadS3Config()
	if err != nil {
		return fmt.Errorf("failed to load S3 config: %v", err)
	}
	uploader := storage.NewS3Uploader(*s3Cfg)

	r := gin.Default()

	setupRoutes(r, db, uploader)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("listening", "port", port)
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, uploader storage.Uploader) {
	r.Use(cors.Default())
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.UploaderMiddleware(uploader))

	// The error boundary stays JSON even for router-level misses.
	r.NoRoute(func(c *gin.Context) {
		helpers.RespondWithError(c, http.StatusNotFound, "Not found.")
	})
	r.NoMethod(func(c *gin.Context) {
		helpers.RespondWithError(c, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.GET("/", handlers.Index)
	r.GET("/classifications", handlers.ListClassifications)

	events := r.Group("/events")
	{
		events.GET("", handlers.ListEvents)
		events.POST("", handlers.CreateEvent)
		events.GET("/:id", handlers.GetEvent)
		events.PUT("/:id", handlers.UpdateEvent)
		events.PATCH("/:id", handlers.UpdateEvent)
		events.DELETE("/:id", handlers.DeleteEvent)

		events.GET("/:id/attendees", handlers.ListAttendees)
		events.POST("/:id/attendees", handlers.CreateAttendee)
	}

	attendees := r.Group("/attendees")
	{
		attendees.GET("/:id", handlers.GetAttendee)
		attendees.PUT("/:id", handlers.UpdateAttendee)
		attendees.PATCH("/:id", handlers.UpdateAttendee)
		attendees.DELETE("/:id", handlers.DeleteAttendee)

		attendees.POST("/:id/checkin", handlers.CheckinAttendee)
		attendees.PATCH("/:id/checkin", handlers.CheckinAttendee)
	}
}
