package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attendee struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	EventID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"event_id"`
	Name           string         `gorm:"size:200;not null" json:"name"`
	Email          string         `gorm:"size:200" json:"email"`
	Classification Classification `gorm:"size:20;not null;default:'General'" json:"classification"`
	CheckedIn      bool           `gorm:"not null;default:false" json:"checked_in"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"-"`
}

func (attendee *Attendee) BeforeCreate(tx *gorm.DB) (err error) {
	if attendee.ID == uuid.Nil {
		attendee.ID = uuid.New()
	}
	if attendee.Classification == "" {
		attendee.Classification = ClassificationGeneral
	}
	return
}
