package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Record struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HabitID     uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Completed   bool      `gorm:"not null"`
	Value       float64   `gorm:"not null"`
	CompletedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (record *Record) BeforeCreate(*gorm.DB) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return nil
}
