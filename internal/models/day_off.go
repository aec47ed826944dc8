package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DayOff struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Date   string `gorm:"size:10;not null;uniqueIndex" json:"date"`
	Reason string `gorm:"size:255;default:'Public Holiday'" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

func (d *DayOff) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
