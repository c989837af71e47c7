package api

import "time"

type loginInput struct {
	Username string `json:"username" form:"username" validate:"required,max=255"`
	Password string `json:"password" form:"password" validate:"required,max=255"`
}

type userRegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=40"`
}

type userCreateInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=40"`
	IsActive *bool  `json:"is_active"`
	IsAdmin  bool   `json:"is_admin"`
}

type userUpdateInput struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8,max=40"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  *bool   `json:"is_admin"`
}

type userUpdateMeInput struct {
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

type updatePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required,max=40"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=40"`
}

type habitCreateInput struct {
	Name      string  `json:"name" validate:"required,max=255"`
	HabitType string  `json:"habit_type" validate:"omitempty,oneof=binary quantitative"`
	Achieved  bool    `json:"achieved"`
	Archived  bool    `json:"archived"`
	StartAt   *string `json:"start_at" validate:"omitempty,datetime=2006-01-02"`
}

type habitUpdateInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	HabitType *string `json:"habit_type" validate:"omitempty,oneof=binary quantitative"`
	Achieved  *bool   `json:"achieved"`
	Archived  *bool   `json:"archived"`
	StartAt   *string `json:"start_at" validate:"omitempty,datetime=2006-01-02"`
}

type recordCreateInput struct {
	Completed   *bool      `json:"completed"`
	Value       *float64   `json:"value" validate:"omitempty,gte=0"`
	CompletedAt *time.Time `json:"completed_at"`
}

type recordUpdateInput struct {
	Completed   *bool      `json:"completed"`
	Value       *float64   `json:"value" validate:"omitempty,gte=0"`
	CompletedAt *time.Time `json:"completed_at"`
}
