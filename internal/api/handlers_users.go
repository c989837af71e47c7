package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/services"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := userRegisterInput{}
	if ok, err := handler.bindInput(c, &input); !ok {
		return err
	}

	handler.ensureDependencies()
	user, err := handler.userService.Register(input.Email, input.Password)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newUserView(&user))
}

func (handler *Handler) ReadUserMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	return c.JSON(newUserView(user))
}

func (handler *Handler) UpdateUserMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	input := userUpdateMeInput{}
	if ok, err := handler.bindInput(c, &input); !ok {
		return err
	}

	handler.ensureDependencies()
	updated, err := handler.userService.UpdateMe(*user, input.Email)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newUserView(&updated))
}

func (handler *Handler) UpdatePasswordMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	input := updatePasswordInput{}
	if ok, err := handler.bindInput(c, &input); !ok {
		return err
	}

	handler.ensureDependencies()
	if err := handler.userService.ChangePassword(*user, input.CurrentPassword, input.NewPassword); err != nil {
		return handler.respondServiceError(c, err)
	}
	return messageResponse(c, "Password updated successfully")
}

func (handler *Handler) DeleteUserMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	handler.ensureDependencies()
	if err := handler.userService.DeleteMe(*user); err != nil {
		return handler.respondServiceError(c, err)
	}
	return messageResponse(c, "User deleted successfully")
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	skip, limit, err := parsePagination(c)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	handler.ensureDependencies()
	users, total, err := handler.userService.ListUsers(skip, limit)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newPageView(users, total, newUserView))
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	input := userCreateInput{}
	if ok, err := handler.bindInput(c, &input); !ok {
		return err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	handler.ensureDependencies()
	user, err := handler.userService.CreateUser(services.NewUser{
		Email:    input.Email,
		Password: input.Password,
		IsActive: isActive,
		IsAdmin:  input.IsAdmin,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newUserView(&user))
}

func (handler *Handler) ReadUserByID(c *fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	handler.ensureDependencies()
	user, err := handler.userService.GetUser(userID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newUserView(&user))
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	input := userUpdateInput{}
	if ok, err := handler.bindInput(c, &input); !ok {
		return err
	}

	handler.ensureDependencies()
	user, err := handler.userService.UpdateUser(userID, services.UserChanges{
		Email:    input.Email,
		Password: input.Password,
		IsActive: input.IsActive,
		IsAdmin:  input.IsAdmin,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newUserView(&user))
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if current, ok := currentUser(c); ok && current.ID == userID {
		return apiError(c, fiber.StatusForbidden, "Super users are not allowed to delete themselves")
	}

	handler.ensureDependencies()
	if err := handler.userService.DeleteUser(userID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return messageResponse(c, "User deleted successfully")
}
