package db

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/models"
	"gorm.io/gorm"
)

type RecordRepository struct {
	database *gorm.DB
}

func NewRecordRepository(database *gorm.DB) *RecordRepository {
	return &RecordRepository{database: database}
}

func (repo *RecordRepository) ListByHabit(ownerID uuid.UUID, habitID uuid.UUID, offset int, limit int) ([]models.Record, int64, error) {
	var count int64
	if err := repo.database.Model(&models.Record{}).
		Where("owner_id = ? AND habit_id = ?", ownerID, habitID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	records := make([]models.Record, 0)
	if err := repo.database.
		Where("owner_id = ? AND habit_id = ?", ownerID, habitID).
		Order("completed_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, count, nil
}

func (repo *RecordRepository) FindByIDForHabit(recordID uuid.UUID, habitID uuid.UUID, ownerID uuid.UUID) (models.Record, error) {
	record := models.Record{}
	if err := repo.database.
		Where("id = ? AND habit_id = ? AND owner_id = ?", recordID, habitID, ownerID).
		First(&record).Error; err != nil {
		return models.Record{}, err
	}
	return record, nil
}

func (repo *RecordRepository) Create(record *models.Record) error {
	return repo.database.Create(record).Error
}

func (repo *RecordRepository) UpdateColumns(record *models.Record, columns []string) error {
	return repo.database.Model(record).Select(columns).Updates(record).Error
}

func (repo *RecordRepository) Delete(record *models.Record) error {
	return repo.database.Delete(record).Error
}
