package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/services"
)

type serviceErrorResponse struct {
	status  int
	message string
}

var serviceErrorResponses = []struct {
	target   error
	response serviceErrorResponse
}{
	{services.ErrInvalidPagination, serviceErrorResponse{fiber.StatusBadRequest, "invalid pagination"}},
	{services.ErrInvalidCredentials, serviceErrorResponse{fiber.StatusBadRequest, "Incorrect email or password"}},
	{services.ErrInactiveUser, serviceErrorResponse{fiber.StatusBadRequest, "Inactive user"}},
	{services.ErrUserNotFound, serviceErrorResponse{fiber.StatusNotFound, "User not found"}},
	{services.ErrEmailTaken, serviceErrorResponse{fiber.StatusBadRequest, "The user with this email already exists in the system"}},
	{services.ErrInvalidEmail, serviceErrorResponse{fiber.StatusBadRequest, "email must be a valid email address"}},
	{services.ErrWeakPassword, serviceErrorResponse{fiber.StatusBadRequest, "password must be between 8 and 40 characters and at most 72 bytes"}},
	{services.ErrIncorrectPassword, serviceErrorResponse{fiber.StatusBadRequest, "Incorrect password"}},
	{services.ErrPasswordMustDiffer, serviceErrorResponse{fiber.StatusBadRequest, "New password cannot be the same as the current one"}},
	{services.ErrAdminSelfDelete, serviceErrorResponse{fiber.StatusForbidden, "Super users are not allowed to delete themselves"}},
	{services.ErrHabitNotFound, serviceErrorResponse{fiber.StatusNotFound, "Habit not found"}},
	{services.ErrInvalidHabitName, serviceErrorResponse{fiber.StatusBadRequest, "name must be between 1 and 255 characters"}},
	{services.ErrInvalidHabitType, serviceErrorResponse{fiber.StatusBadRequest, "habit_type must be one of: binary, quantitative"}},
	{services.ErrRecordNotFound, serviceErrorResponse{fiber.StatusNotFound, "Record not found"}},
	{services.ErrInvalidRecordValue, serviceErrorResponse{fiber.StatusBadRequest, "value must be greater than or equal to 0"}},
}

// respondServiceError maps a service sentinel to its HTTP response. Anything
// unmapped is logged and reported as 500.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	for _, candidate := range serviceErrorResponses {
		if errors.Is(err, candidate.target) {
			return apiError(c, candidate.response.status, candidate.response.message)
		}
	}
	return handler.internalError(c, err)
}
