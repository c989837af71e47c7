package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/habitual/internal/services"
)

const internalErrorMessage = "internal server error"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// internalError logs cause with the request context and hides it from the client.
func (handler *Handler) internalError(c *fiber.Ctx, cause error) error {
	handler.logger.WithError(cause).WithFields(logrus.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
	}).Error("request failed")
	return apiError(c, fiber.StatusInternalServerError, internalErrorMessage)
}

func messageResponse(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	value, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, false
	}
	return value, true
}

// parsePagination reads skip and limit, applying defaults when absent.
func parsePagination(c *fiber.Ctx) (int, int, error) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return 0, 0, services.ErrInvalidPagination
	}
	limit, err := queryInt(c, "limit", services.DefaultPageLimit)
	if err != nil {
		return 0, 0, services.ErrInvalidPagination
	}
	if err := services.ValidatePagination(skip, limit); err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

func queryInt(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
