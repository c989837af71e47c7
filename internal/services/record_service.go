package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidRecordValue = errors.New("invalid record value")
	ErrRecordLookupFailed = errors.New("record lookup failed")
	ErrListRecordsFailed  = errors.New("list records failed")
	ErrCreateRecordFailed = errors.New("create record failed")
	ErrUpdateRecordFailed = errors.New("update record failed")
	ErrDeleteRecordFailed = errors.New("delete record failed")
)

type RecordRepository interface {
	ListByHabit(ownerID uuid.UUID, habitID uuid.UUID, offset int, limit int) ([]models.Record, int64, error)
	FindByIDForHabit(recordID uuid.UUID, habitID uuid.UUID, ownerID uuid.UUID) (models.Record, error)
	Create(record *models.Record) error
	UpdateColumns(record *models.Record, columns []string) error
	Delete(record *models.Record) error
}

type RecordHabitReader interface {
	GetHabit(ownerID uuid.UUID, habitID uuid.UUID) (models.Habit, error)
}

type NewRecord struct {
	Completed   *bool
	Value       *float64
	CompletedAt *time.Time
}

type RecordChanges struct {
	Completed   *bool
	Value       *float64
	CompletedAt *time.Time
}

type RecordService struct {
	records RecordRepository
	habits  RecordHabitReader
}

func NewRecordService(records RecordRepository, habits RecordHabitReader) *RecordService {
	return &RecordService{records: records, habits: habits}
}

func (service *RecordService) ListRecords(ownerID uuid.UUID, habitID uuid.UUID, offset int, limit int) ([]models.Record, int64, error) {
	if err := ValidatePagination(offset, limit); err != nil {
		return nil, 0, err
	}
	if _, err := service.habits.GetHabit(ownerID, habitID); err != nil {
		return nil, 0, err
	}
	records, total, err := service.records.ListByHabit(ownerID, habitID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrListRecordsFailed, err)
	}
	return records, total, nil
}

func (service *RecordService) CreateRecord(ownerID uuid.UUID, habitID uuid.UUID, input NewRecord, now time.Time) (models.Record, error) {
	habit, err := service.habits.GetHabit(ownerID, habitID)
	if err != nil {
		return models.Record{}, err
	}

	record := models.Record{
		HabitID:     habit.ID,
		OwnerID:     habit.OwnerID,
		Completed:   true,
		CompletedAt: now.UTC(),
	}
	if input.Completed != nil {
		record.Completed = *input.Completed
	}
	if input.Value != nil {
		if err := validateRecordValue(*input.Value); err != nil {
			return models.Record{}, err
		}
		record.Value = *input.Value
	}
	if input.CompletedAt != nil {
		record.CompletedAt = input.CompletedAt.UTC()
	}

	if err := service.records.Create(&record); err != nil {
		return models.Record{}, fmt.Errorf("%w: %v", ErrCreateRecordFailed, err)
	}
	return record, nil
}

func (service *RecordService) GetRecord(ownerID uuid.UUID, habitID uuid.UUID, recordID uuid.UUID) (models.Record, error) {
	if _, err := service.habits.GetHabit(ownerID, habitID); err != nil {
		return models.Record{}, err
	}
	record, err := service.records.FindByIDForHabit(recordID, habitID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Record{}, ErrRecordNotFound
		}
		return models.Record{}, fmt.Errorf("%w: %v", ErrRecordLookupFailed, err)
	}
	return record, nil
}

func (service *RecordService) UpdateRecord(ownerID uuid.UUID, habitID uuid.UUID, recordID uuid.UUID, changes RecordChanges) (models.Record, error) {
	record, err := service.GetRecord(ownerID, habitID, recordID)
	if err != nil {
		return models.Record{}, err
	}

	columns := make([]string, 0, 3)
	if changes.Completed != nil {
		record.Completed = *changes.Completed
		columns = append(columns, "completed")
	}
	if changes.Value != nil {
		if err := validateRecordValue(*changes.Value); err != nil {
			return models.Record{}, err
		}
		record.Value = *changes.Value
		columns = append(columns, "value")
	}
	if changes.CompletedAt != nil {
		record.CompletedAt = changes.CompletedAt.UTC()
		columns = append(columns, "completed_at")
	}
	if len(columns) == 0 {
		return record, nil
	}

	if err := service.records.UpdateColumns(&record, columns); err != nil {
		return models.Record{}, fmt.Errorf("%w: %v", ErrUpdateRecordFailed, err)
	}
	return record, nil
}

func (service *RecordService) DeleteRecord(ownerID uuid.UUID, habitID uuid.UUID, recordID uuid.UUID) error {
	record, err := service.GetRecord(ownerID, habitID, recordID)
	if err != nil {
		return err
	}
	if err := service.records.Delete(&record); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteRecordFailed, err)
	}
	return nil
}

func validateRecordValue(value float64) error {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return ErrInvalidRecordValue
	}
	return nil
}
