package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/models"
	"github.com/terraincognita07/habitual/internal/services"
)

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	skip, limit, err := parsePagination(c)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	handler.ensureDependencies()
	habits, total, err := handler.habitService.ListHabits(user.ID, skip, limit)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newPageView(habits, total, newHabitView))
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	input := habitCreateInput{}
	if ok, err := handler.bindInput(c, &input); !ok {
		return err
	}
	startAt, err := parseOptionalDate(input.StartAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "start_at must be a date in YYYY-MM-DD format")
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.CreateHabit(user.ID, services.NewHabit{
		Name:      input.Name,
		HabitType: input.HabitType,
		Achieved:  input.Achieved,
		Archived:  input.Archived,
		StartAt:   startAt,
	}, handler.now())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newHabitView(&habit))
}

func (handler *Handler) ReadHabit(c *fiber.Ctx) error {
	target, ok, err := handler.habitRequestTarget(c)
	if !ok {
		return err
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.GetHabit(target.user.ID, target.habitID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newHabitView(&habit))
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	target, ok, err := handler.habitRequestTarget(c)
	if !ok {
		return err
	}
	input := habitUpdateInput{}
	if ok, err := handler.bindInput(c, &input); !ok {
		return err
	}
	startAt, err := parseOptionalDate(input.StartAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "start_at must be a date in YYYY-MM-DD format")
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.UpdateHabit(target.user.ID, target.habitID, services.HabitChanges{
		Name:      input.Name,
		HabitType: input.HabitType,
		Achieved:  input.Achieved,
		Archived:  input.Archived,
		StartAt:   startAt,
	}, handler.now())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newHabitView(&habit))
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	target, ok, err := handler.habitRequestTarget(c)
	if !ok {
		return err
	}

	handler.ensureDependencies()
	if err := handler.habitService.DeleteHabit(target.user.ID, target.habitID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return messageResponse(c, "Habit deleted successfully")
}

type habitTarget struct {
	user    *models.User
	habitID uuid.UUID
}

// habitRequestTarget resolves the caller and the habit_id path parameter.
// When ok is false the response has been written and err must be returned.
func (handler *Handler) habitRequestTarget(c *fiber.Ctx) (habitTarget, bool, error) {
	user, ok := currentUser(c)
	if !ok {
		return habitTarget{}, false, apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	habitID, ok := parseUUIDParam(c, "habit_id")
	if !ok {
		return habitTarget{}, false, apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}
	return habitTarget{user: user, habitID: habitID}, true, nil
}
