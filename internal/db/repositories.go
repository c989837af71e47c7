package db

import "gorm.io/gorm"

type Repositories struct {
	Users   *UserRepository
	Habits  *HabitRepository
	Records *RecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Habits:  NewHabitRepository(database),
		Records: NewRecordRepository(database),
	}
}
