package api

import (
	"github.com/terraincognita07/habitual/internal/db"
	"github.com/terraincognita07/habitual/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.userService = services.NewUserService(handler.repositories.Users)
	handler.habitService = services.NewHabitService(handler.repositories.Habits)
	handler.recordService = services.NewRecordService(handler.repositories.Records, handler.habitService)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.userService == nil {
		handler.userService = services.NewUserService(handler.repositories.Users)
	}
	if handler.habitService == nil {
		handler.habitService = services.NewHabitService(handler.repositories.Habits)
	}
	if handler.recordService == nil {
		handler.recordService = services.NewRecordService(handler.repositories.Records, handler.habitService)
	}
}
