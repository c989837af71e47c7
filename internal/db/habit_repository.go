package db

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByOwner(ownerID uuid.UUID, offset int, limit int) ([]models.Habit, int64, error) {
	var count int64
	if err := repo.database.Model(&models.Habit{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&habits).Error; err != nil {
		return nil, 0, err
	}
	return habits, count, nil
}

func (repo *HabitRepository) FindByIDForOwner(habitID uuid.UUID, ownerID uuid.UUID) (models.Habit, error) {
	habit := models.Habit{}
	if err := repo.database.Where("id = ? AND owner_id = ?", habitID, ownerID).First(&habit).Error; err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) UpdateColumns(habit *models.Habit, columns []string) error {
	return repo.database.Model(habit).Select(columns).Updates(habit).Error
}

func (repo *HabitRepository) DeleteWithRecords(habit *models.Habit) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.Record{}).Error; err != nil {
			return err
		}
		return tx.Delete(habit).Error
	})
}
