package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/models"
)

type tokenView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type habitView struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Name          string    `json:"name"`
	HabitType     string    `json:"habit_type"`
	Achieved      bool      `json:"achieved"`
	Archived      bool      `json:"archived"`
	StartAt       string    `json:"start_at"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

type recordView struct {
	ID          uuid.UUID `json:"id"`
	HabitID     uuid.UUID `json:"habit_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Completed   bool      `json:"completed"`
	Value       float64   `json:"value"`
	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type pageView[T any] struct {
	Data  []T   `json:"data"`
	Count int64 `json:"count"`
}

func newUserView(user *models.User) userView {
	return userView{
		ID:        user.ID,
		Email:     user.Email,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt.UTC(),
	}
}

func newHabitView(habit *models.Habit) habitView {
	return habitView{
		ID:            habit.ID,
		OwnerID:       habit.OwnerID,
		Name:          habit.Name,
		HabitType:     habit.HabitType,
		Achieved:      habit.Achieved,
		Archived:      habit.Archived,
		StartAt:       habit.StartAt.UTC().Format(dateLayout),
		CreatedAt:     habit.CreatedAt.UTC(),
		LastUpdatedAt: habit.LastUpdatedAt.UTC(),
	}
}

func newRecordView(record *models.Record) recordView {
	return recordView{
		ID:          record.ID,
		HabitID:     record.HabitID,
		OwnerID:     record.OwnerID,
		Completed:   record.Completed,
		Value:       record.Value,
		CompletedAt: record.CompletedAt.UTC(),
		CreatedAt:   record.CreatedAt.UTC(),
	}
}

func newPageView[M any, V any](rows []M, count int64, convert func(*M) V) pageView[V] {
	data := make([]V, 0, len(rows))
	for index := range rows {
		data = append(data, convert(&rows[index]))
	}
	return pageView[V]{Data: data, Count: count}
}
