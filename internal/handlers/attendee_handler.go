package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/asistio/asistio-api/internal/helpers"
	"github.com/asistio/asistio-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendeeRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Classification string `json:"classification"`
}

type AttendeeUpdateRequest struct {
	Name           helpers.Optional[string] `json:"name"`
	Email          helpers.Optional[string] `json:"email"`
	Classification helpers.Optional[string] `json:"classification"`
	CheckedIn      helpers.Optional[bool]   `json:"checked_in"`
}

type CheckinRequest struct {
	CheckedIn *bool `json:"checked_in"`
}

func CreateAttendee(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	var req AttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.Name) > 200 {
		helpers.RespondWithError(c, http.StatusBadRequest, "name must be at most 200 characters")
		return
	}

	classification := models.ClassificationGeneral
	if req.Classification != "" {
		classification = models.Classification(req.Classification)
		if !classification.Valid() {
			helpers.RespondWithError(c, http.StatusBadRequest,
				fmt.Sprintf("classification must be one of: %s", models.ClassificationList()))
			return
		}
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
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error verifying event.")
		return
	}

	attendee := models.Attendee{
		ID:             uuid.New(),
		EventID:        event.ID,
		Name:           req.Name,
		Email:          req.Email,
		Classification: classification,
	}

	if err := gormDB.Create(&attendee).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create attendee.")
		return
	}

	c.JSON(http.StatusCreated, attendee)
}

func ListAttendees(c *gin.Context) {
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
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error verifying event.")
		return
	}

	query := gormDB.Where("event_id = ?", eventID)
	if classification := c.Query("classification"); classification != "" {
		query = query.Where("classification = ?", classification)
	}
	if checkedIn := helpers.ParseBoolFilter(c.Query("checked_in")); checkedIn != nil {
		query = query.Where("checked_in = ?", *checkedIn)
	}

	var attendees []models.Attendee
	if err := query.Order("created_at ASC").Find(&attendees).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving attendees.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attendees": attendees,
		"total":     len(attendees),
	})
}

func GetAttendee(c *gin.Context) {
	attendeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Attendee not found.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var attendee models.Attendee
	if err := gormDB.Where("id = ?", attendeeID).First(&attendee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Attendee not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving attendee.")
		return
	}

	c.JSON(http.StatusOK, attendee)
}

func UpdateAttendee(c *gin.Context) {
	attendeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Attendee not found.")
		return
	}

	var req AttendeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name.Set {
		name := strings.TrimSpace(req.Name.Value)
		if !req.Name.Valid || name == "" {
			helpers.RespondWithError(c, http.StatusBadRequest, "name cannot be empty")
			return
		}
		if len(name) > 200 {
			helpers.RespondWithError(c, http.StatusBadRequest, "name must be at most 200 characters")
			return
		}
		req.Name.Value = name
	}

	var classification models.Classification
	if req.Classification.Set {
		classification = models.Classification(req.Classification.Value)
		if !req.Classification.Valid || !classification.Valid() {
			helpers.RespondWithError(c, http.StatusBadRequest,
				fmt.Sprintf("classification must be one of: %s", models.ClassificationList()))
			return
		}
	}

	if req.CheckedIn.Set && !req.CheckedIn.Valid {
		helpers.RespondWithError(c, http.StatusBadRequest, "checked_in must be a boolean")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var attendee models.Attendee
	if err := gormDB.Where("id = ?", attendeeID).First(&attendee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Attendee not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding attendee.")
		return
	}

	if req.Name.Set {
		attendee.Name = req.Name.Value
	}
	if req.Email.Set {
		attendee.Email = ""
		if req.Email.Valid {
			attendee.Email = req.Email.Value
		}
	}
	if req.Classification.Set {
		attendee.Classification = classification
	}
	if req.CheckedIn.Set {
		attendee.CheckedIn = req.CheckedIn.Value
	}

	if err := gormDB.Save(&attendee).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update attendee.")
		return
	}

	c.JSON(http.StatusOK, attendee)
}

func DeleteAttendee(c *gin.Context) {
	attendeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Attendee not found.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	result := gormDB.Where("id = ?", attendeeID).Delete(&models.Attendee{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete attendee.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Attendee not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attendee deleted successfully.",
	})
}

// CheckinAttendee sets checked_in when the body supplies an explicit
// boolean, otherwise flips the current value. The toggle runs as a
// single UPDATE with NOT so concurrent toggles serialize at the row.
func CheckinAttendee(c *gin.Context) {
	attendeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Attendee not found.")
		return
	}

	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var attendee models.Attendee
	if err := gormDB.Where("id = ?", attendeeID).First(&attendee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Attendee not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding attendee.")
		return
	}

	update := gormDB.Model(&attendee).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "checked_in"}}})
	if req.CheckedIn != nil {
		err = update.Update("checked_in", *req.CheckedIn).Error
	} else {
		err = update.Update("checked_in", gorm.Expr("NOT checked_in")).Error
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update check-in.")
		return
	}

	c.JSON(http.StatusOK, attendee)
}
