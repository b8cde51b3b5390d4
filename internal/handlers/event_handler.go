package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/asistio/asistio-api/internal/helpers"
	"github.com/asistio/asistio-api/internal/middleware"
	"github.com/asistio/asistio-api/internal/models"
	"github.com/asistio/asistio-api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	StartDatetime string `json:"start_datetime"`
}

type EventUpdateRequest struct {
	Title         helpers.Optional[string] `json:"title"`
	Description   helpers.Optional[string] `json:"description"`
	Location      helpers.Optional[string] `json:"location"`
	StartDatetime helpers.Optional[string] `json:"start_datetime"`
}

func CreateEvent(c *gin.Context) {
	var req EventRequest
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req.Title = c.PostForm("title")
		req.Description = c.PostForm("description")
		req.Location = c.PostForm("location")
		req.StartDatetime = c.PostForm("start_datetime")
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "title is required")
		return
	}
	if len(req.Title) > 200 {
		helpers.RespondWithError(c, http.StatusBadRequest, "title must be at most 200 characters")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	event := models.Event{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		StartDatetime: helpers.ParseTimestamp(req.StartDatetime),
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imageURL, uploadErr := uploadEventImage(c, imageFile)
		if uploadErr != nil {
			var storageErr *storage.UploadError
			if errors.As(uploadErr, &storageErr) {
				helpers.RespondWithError(c, http.StatusBadGateway, "Failed to upload image.")
			} else {
				helpers.RespondWithError(c, http.StatusBadRequest, uploadErr.Error())
			}
			return
		}
		event.ImageURL = imageURL
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	event.AttendeesCount = 0
	c.JSON(http.StatusCreated, event)
}

func GetEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	err = gormDB.
		Preload("Attendees", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", eventID).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	event.AttendeesCount = int64(len(event.Attendees))
	c.JSON(http.StatusOK, event)
}

func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	limit, err := helpers.StringToInt(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}
	offset, err := helpers.StringToInt(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid offset.")
		return
	}

	query := gormDB.Model(&models.Event{})
	if q := c.Query("q"); q != "" {
		query = query.Where("title ILIKE ?", "%"+q+"%")
	}

	var total int64
	query.Count(&total)

	var events []models.Event
	err = query.
		Order("start_datetime ASC NULLS LAST, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	if err := fillAttendeeCounts(gormDB, events); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func UpdateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	var req EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Title.Set {
		title := strings.TrimSpace(req.Title.Value)
		if !req.Title.Valid || title == "" {
			helpers.RespondWithError(c, http.StatusBadRequest, "title cannot be empty")
			return
		}
		if len(title) > 200 {
			helpers.RespondWithError(c, http.StatusBadRequest, "title must be at most 200 characters")
			return
		}
		req.Title.Value = title
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	if req.Title.Set {
		event.Title = req.Title.Value
	}
	if req.Description.Set {
		event.Description = ""
		if req.Description.Valid {
			event.Description = req.Description.Value
		}
	}
	if req.Location.Set {
		event.Location = ""
		if req.Location.Valid {
			event.Location = req.Location.Value
		}
	}
	if req.StartDatetime.Set {
		if !req.StartDatetime.Valid {
			event.StartDatetime = nil
		} else if parsed := helpers.ParseTimestamp(req.StartDatetime.Value); parsed != nil {
			event.StartDatetime = parsed
		}
	}

	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	gormDB.Model(&models.Attendee{}).
		Where("event_id = ?", event.ID).
		Count(&event.AttendeesCount)

	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	// Attendees and event go in one transaction; the FK cascade is a
	// backstop for rows created outside AutoMigrate.
	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&models.Attendee{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", eventID).Delete(&models.Event{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}

// uploadEventImage enforces size and MIME limits before handing the
// blob to the object store. Content type is sniffed, not trusted from
// the client header.
func uploadEventImage(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > storage.MaxUploadSizeBytes {
		return "", fmt.Errorf("file size exceeds maximum limit of %d MB", storage.MaxUploadSizeBytes/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	mimeType := http.DetectContentType(buffer[:n])
	if !storage.ValidMimeType(mimeType) {
		return "", fmt.Errorf("invalid file type. Allowed types: %v", storage.AllowedMimeTypes())
	}

	uploader := middleware.GetUploader(c)
	if uploader == nil {
		return "", &storage.UploadError{Err: errors.New("uploader not configured")}
	}

	body := io.MultiReader(bytes.NewReader(buffer[:n]), src)
	return uploader.Upload(c.Request.Context(), body, fileHeader.Filename, mimeType)
}

type attendeeCountRow struct {
	EventID uuid.UUID
	Count   int64
}

func fillAttendeeCounts(db *gorm.DB, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(events))
	for i, event := range events {
		ids[i] = event.ID
	}

	var rows []attendeeCountRow
	err := db.Model(&models.Attendee{}).
		Select("event_id, count(*) as count").
		Where("event_id IN ?", ids).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.EventID] = row.Count
	}
	for i := range events {
		events[i].AttendeesCount = counts[events[i].ID]
	}
	return nil
}
