package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the JSON API under prefix, for example /api/v1.
func RegisterRoutes(app *fiber.App, handler *Handler, prefix string) {
	app.Get("/healthz", handler.Health)

	api := app.Group(strings.TrimRight(prefix, "/"))

	login := api.Group("/login")
	login.Post("/token", handler.LoginAccessToken)
	login.Post("/test-token", handler.AuthRequired, handler.TestToken)

	users := api.Group("/users")
	users.Post("/signup", handler.Signup)
	users.Get("/me", handler.AuthRequired, handler.ReadUserMe)
	users.Patch("/me", handler.AuthRequired, handler.UpdateUserMe)
	users.Patch("/me/password", handler.AuthRequired, handler.UpdatePasswordMe)
	users.Delete("/me", handler.AuthRequired, handler.DeleteUserMe)
	users.Get("/", handler.AuthRequired, handler.AdminOnly, handler.ListUsers)
	users.Post("/", handler.AuthRequired, handler.AdminOnly, handler.CreateUser)
	users.Get("/:user_id", handler.AuthRequired, handler.AdminOnly, handler.ReadUserByID)
	users.Patch("/:user_id", handler.AuthRequired, handler.AdminOnly, handler.UpdateUser)
	users.Delete("/:user_id", handler.AuthRequired, handler.AdminOnly, handler.DeleteUser)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("/", handler.ListHabits)
	habits.Post("/", handler.CreateHabit)
	habits.Get("/:habit_id", handler.ReadHabit)
	habits.Put("/:habit_id", handler.UpdateHabit)
	habits.Delete("/:habit_id", handler.DeleteHabit)

	records := habits.Group("/:habit_id/records")
	records.Get("/", handler.ListRecords)
	records.Post("/", handler.CreateRecord)
	records.Get("/:record_id", handler.ReadRecord)
	records.Put("/:record_id", handler.UpdateRecord)
	records.Delete("/:record_id", handler.DeleteRecord)
}
