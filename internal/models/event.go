package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Location      string     `gorm:"size:200" json:"location"`
	ImageURL      string     `gorm:"size:500" json:"image_url"`
	StartDatetime *time.Time `json:"start_datetime"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"-"`

	Attendees      []Attendee `gorm:"constraint:OnDelete:CASCADE" json:"attendees,omitempty"`
	AttendeesCount int64      `gorm:"-" json:"attendees_count"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
