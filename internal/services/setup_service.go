package services

import (
	"errors"
	"fmt"
)

var ErrFirstSuperuserSetupFailed = errors.New("first superuser setup failed")

type SetupUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
}

type SetupService struct {
	users    SetupUserRepository
	accounts *UserService
}

func NewSetupService(users SetupUserRepository, accounts *UserService) *SetupService {
	return &SetupService{users: users, accounts: accounts}
}

// EnsureFirstSuperuser creates an active admin for email unless an account
// with that email already exists. It reports whether a user was created.
func (service *SetupService) EnsureFirstSuperuser(email string, password string) (bool, error) {
	normalized := NormalizeAuthEmail(email)
	if normalized == "" {
		return false, ErrInvalidEmail
	}

	exists, err := service.users.ExistsByNormalizedEmail(normalized)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFirstSuperuserSetupFailed, err)
	}
	if exists {
		return false, nil
	}

	if _, err := service.accounts.CreateUser(NewUser{
		Email:    normalized,
		Password: password,
		IsActive: true,
		IsAdmin:  true,
	}); err != nil {
		return false, err
	}
	return true, nil
}
