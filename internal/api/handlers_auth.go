package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/services"
)

// LoginAccessToken exchanges form or JSON credentials for a bearer token.
func (handler *Handler) LoginAccessToken(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := handler.now()
	if handler.loginLimiter.blocked(limiterKey, now) {
		handler.observeLogin("throttled")
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := loginInput{}
	if ok, err := handler.bindInput(c, &input); !ok {
		return err
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(input.Username, input.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		handler.loginLimiter.addFailure(limiterKey, now)
		handler.observeLogin("invalid")
		return handler.respondServiceError(c, err)
	case errors.Is(err, services.ErrInactiveUser):
		handler.observeLogin("inactive")
		return handler.respondServiceError(c, err)
	case err != nil:
		return handler.internalError(c, err)
	}

	token, err := handler.issueAccessToken(&user)
	if err != nil {
		return handler.internalError(c, err)
	}
	handler.loginLimiter.reset(limiterKey)
	handler.observeLogin("success")
	return c.JSON(tokenView{AccessToken: token, TokenType: "bearer"})
}

func (handler *Handler) TestToken(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	return c.JSON(newUserView(user))
}
