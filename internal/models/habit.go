package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	HabitTypeBinary       = "binary"
	HabitTypeQuantitative = "quantitative"
)

const MaxHabitNameLength = 255

type Habit struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"not null;size:255"`
	HabitType     string    `gorm:"not null"`
	Achieved      bool      `gorm:"not null"`
	Archived      bool      `gorm:"not null"`
	StartAt       time.Time `gorm:"type:date;not null"`
	CreatedAt     time.Time `gorm:"not null"`
	LastUpdatedAt time.Time `gorm:"not null"`
}

func IsValidHabitType(value string) bool {
	return value == HabitTypeBinary || value == HabitTypeQuantitative
}

func (habit *Habit) BeforeCreate(*gorm.DB) error {
	if habit.ID == uuid.Nil {
		habit.ID = uuid.New()
	}
	return nil
}
