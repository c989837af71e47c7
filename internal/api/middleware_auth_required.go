package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/security"
	"github.com/terraincognita07/habitual/internal/services"
)

// AuthRequired resolves the bearer token into an active user stored in locals.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken, ok := bearerToken(c)
	if !ok {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	userID, err := security.ParseAccessToken(handler.secretKey, rawToken, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusForbidden, "Could not validate credentials")
	}

	handler.ensureDependencies()
	user, err := handler.authService.ResolveActiveUser(userID)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrInactiveUser):
		return apiError(c, fiber.StatusBadRequest, "Inactive user")
	case err != nil:
		return handler.internalError(c, err)
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

// AdminOnly must run after AuthRequired.
func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	if !user.IsAdmin {
		return apiError(c, fiber.StatusForbidden, "The user doesn't have enough privileges")
	}
	return c.Next()
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
