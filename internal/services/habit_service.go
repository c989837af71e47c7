package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/models"
	"gorm.io/gorm"
)

var (
	ErrHabitNotFound     = errors.New("habit not found")
	ErrInvalidHabitName  = errors.New("invalid habit name")
	ErrInvalidHabitType  = errors.New("invalid habit type")
	ErrHabitLookupFailed = errors.New("habit lookup failed")
	ErrListHabitsFailed  = errors.New("list habits failed")
	ErrCreateHabitFailed = errors.New("create habit failed")
	ErrUpdateHabitFailed = errors.New("update habit failed")
	ErrDeleteHabitFailed = errors.New("delete habit failed")
)

type HabitRepository interface {
	ListByOwner(ownerID uuid.UUID, offset int, limit int) ([]models.Habit, int64, error)
	FindByIDForOwner(habitID uuid.UUID, ownerID uuid.UUID) (models.Habit, error)
	Create(habit *models.Habit) error
	UpdateColumns(habit *models.Habit, columns []string) error
	DeleteWithRecords(habit *models.Habit) error
}

type NewHabit struct {
	Name      string
	HabitType string
	Achieved  bool
	Archived  bool
	StartAt   *time.Time
}

type HabitChanges struct {
	Name      *string
	HabitType *string
	Achieved  *bool
	Archived  *bool
	StartAt   *time.Time
}

type HabitService struct {
	habits HabitRepository
}

func NewHabitService(habits HabitRepository) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) ListHabits(ownerID uuid.UUID, offset int, limit int) ([]models.Habit, int64, error) {
	if err := ValidatePagination(offset, limit); err != nil {
		return nil, 0, err
	}
	habits, total, err := service.habits.ListByOwner(ownerID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrListHabitsFailed, err)
	}
	return habits, total, nil
}

func (service *HabitService) CreateHabit(ownerID uuid.UUID, input NewHabit, now time.Time) (models.Habit, error) {
	if err := validateHabitName(input.Name); err != nil {
		return models.Habit{}, err
	}
	habitType := strings.TrimSpace(input.HabitType)
	if habitType == "" {
		habitType = models.HabitTypeBinary
	}
	if !models.IsValidHabitType(habitType) {
		return models.Habit{}, ErrInvalidHabitType
	}

	startAt := now
	if input.StartAt != nil {
		startAt = *input.StartAt
	}

	habit := models.Habit{
		OwnerID:       ownerID,
		Name:          input.Name,
		HabitType:     habitType,
		Achieved:      input.Achieved,
		Archived:      input.Archived,
		StartAt:       DateOnlyUTC(startAt),
		LastUpdatedAt: now.UTC(),
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, fmt.Errorf("%w: %v", ErrCreateHabitFailed, err)
	}
	return habit, nil
}

func (service *HabitService) GetHabit(ownerID uuid.UUID, habitID uuid.UUID) (models.Habit, error) {
	habit, err := service.habits.FindByIDForOwner(habitID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Habit{}, ErrHabitNotFound
		}
		return models.Habit{}, fmt.Errorf("%w: %v", ErrHabitLookupFailed, err)
	}
	return habit, nil
}

func (service *HabitService) UpdateHabit(ownerID uuid.UUID, habitID uuid.UUID, changes HabitChanges, now time.Time) (models.Habit, error) {
	habit, err := service.GetHabit(ownerID, habitID)
	if err != nil {
		return models.Habit{}, err
	}

	columns := make([]string, 0, 6)
	if changes.Name != nil {
		if err := validateHabitName(*changes.Name); err != nil {
			return models.Habit{}, err
		}
		habit.Name = *changes.Name
		columns = append(columns, "name")
	}
	if changes.HabitType != nil {
		habitType := strings.TrimSpace(*changes.HabitType)
		if !models.IsValidHabitType(habitType) {
			return models.Habit{}, ErrInvalidHabitType
		}
		habit.HabitType = habitType
		columns = append(columns, "habit_type")
	}
	if changes.Achieved != nil {
		habit.Achieved = *changes.Achieved
		columns = append(columns, "achieved")
	}
	if changes.Archived != nil {
		habit.Archived = *changes.Archived
		columns = append(columns, "archived")
	}
	if changes.StartAt != nil {
		habit.StartAt = DateOnlyUTC(*changes.StartAt)
		columns = append(columns, "start_at")
	}
	if len(columns) == 0 {
		return habit, nil
	}

	habit.LastUpdatedAt = now.UTC()
	columns = append(columns, "last_updated_at")
	if err := service.habits.UpdateColumns(&habit, columns); err != nil {
		return models.Habit{}, fmt.Errorf("%w: %v", ErrUpdateHabitFailed, err)
	}
	return habit, nil
}

func (service *HabitService) DeleteHabit(ownerID uuid.UUID, habitID uuid.UUID) error {
	habit, err := service.GetHabit(ownerID, habitID)
	if err != nil {
		return err
	}
	if err := service.habits.DeleteWithRecords(&habit); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteHabitFailed, err)
	}
	return nil
}

func validateHabitName(name string) error {
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > models.MaxHabitNameLength {
		return ErrInvalidHabitName
	}
	return nil
}

// DateOnlyUTC drops the clock part of value after converting it to UTC.
func DateOnlyUTC(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
