package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment represents one unit of consumed Slot capacity for
// its (date, time) pair.
type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	AppointmentDate string `gorm:"size:10;not null;index" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
