package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Slot struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_slots_date_time" json:"date"`
	Time string `gorm:"size:5;not null;uniqueIndex:idx_slots_date_time" json:"time"`

	RemainingCapacity int `gorm:"not null;default:1" json:"remaining_capacity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Slot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
