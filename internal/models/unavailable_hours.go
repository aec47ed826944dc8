package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnavailableHours blocks the half-open interval [StartTime, EndTime)
// on a single date. Ranges on the same date may overlap each other.
type UnavailableHours struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Date      string `gorm:"size:10;not null;index" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
}

func (u *UnavailableHours) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
