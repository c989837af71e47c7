package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/models"
	"github.com/terraincognita07/habitual/internal/security"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidEmail           = errors.New("invalid email")
	ErrIncorrectPassword      = errors.New("incorrect password")
	ErrPasswordMustDiffer     = errors.New("new password must differ from current")
	ErrAdminSelfDelete        = errors.New("admin users cannot delete themselves")
	ErrCreateUserFailed       = errors.New("create user failed")
	ErrUpdateUserFailed       = errors.New("update user failed")
	ErrDeleteUserFailed       = errors.New("delete user failed")
	ErrListUsersFailed        = errors.New("list users failed")
	ErrHashPasswordFailed     = errors.New("hash password failed")
	ErrEmailAvailabilityCheck = errors.New("email availability check failed")
)

type UserRepository interface {
	List(offset int, limit int) ([]models.User, int64, error)
	FindByID(userID uuid.UUID) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	Create(user *models.User) error
	UpdateColumns(user *models.User, columns []string) error
	UpdatePassword(userID uuid.UUID, hashedPassword string) error
	DeleteAccountAndRelatedData(userID uuid.UUID) error
}

type NewUser struct {
	Email    string
	Password string
	IsActive bool
	IsAdmin  bool
}

// UserChanges carries a partial update; nil fields are left untouched.
type UserChanges struct {
	Email    *string
	Password *string
	IsActive *bool
	IsAdmin  *bool
}

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

func (service *UserService) Register(email string, password string) (models.User, error) {
	return service.CreateUser(NewUser{Email: email, Password: password, IsActive: true})
}

func (service *UserService) CreateUser(input NewUser) (models.User, error) {
	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return models.User{}, ErrInvalidEmail
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return models.User{}, err
	}
	if err := service.ensureEmailAvailable(email, uuid.Nil); err != nil {
		return models.User{}, err
	}

	hashed, err := security.HashPassword(input.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrHashPasswordFailed, err)
	}

	user := models.User{
		Email:          email,
		HashedPassword: hashed,
		IsActive:       input.IsActive,
		IsAdmin:        input.IsAdmin,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrCreateUserFailed, err)
	}
	return user, nil
}

func (service *UserService) ListUsers(offset int, limit int) ([]models.User, int64, error) {
	if err := ValidatePagination(offset, limit); err != nil {
		return nil, 0, err
	}
	users, total, err := service.users.List(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrListUsersFailed, err)
	}
	return users, total, nil
}

func (service *UserService) GetUser(userID uuid.UUID) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrUserLookupFailed, err)
	}
	return user, nil
}

func (service *UserService) UpdateUser(userID uuid.UUID, changes UserChanges) (models.User, error) {
	user, err := service.GetUser(userID)
	if err != nil {
		return models.User{}, err
	}

	columns := make([]string, 0, 4)
	if changes.Email != nil {
		email := NormalizeAuthEmail(*changes.Email)
		if email == "" {
			return models.User{}, ErrInvalidEmail
		}
		if err := service.ensureEmailAvailable(email, user.ID); err != nil {
			return models.User{}, err
		}
		user.Email = email
		columns = append(columns, "email")
	}
	if changes.Password != nil {
		if err := ValidatePasswordStrength(*changes.Password); err != nil {
			return models.User{}, err
		}
		hashed, err := security.HashPassword(*changes.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %v", ErrHashPasswordFailed, err)
		}
		user.HashedPassword = hashed
		columns = append(columns, "hashed_password")
	}
	if changes.IsActive != nil {
		user.IsActive = *changes.IsActive
		columns = append(columns, "is_active")
	}
	if changes.IsAdmin != nil {
		user.IsAdmin = *changes.IsAdmin
		columns = append(columns, "is_admin")
	}
	if len(columns) == 0 {
		return user, nil
	}

	if err := service.users.UpdateColumns(&user, columns); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUpdateUserFailed, err)
	}
	return user, nil
}

// UpdateMe only lets a user change their own email.
func (service *UserService) UpdateMe(user models.User, email *string) (models.User, error) {
	return service.UpdateUser(user.ID, UserChanges{Email: email})
}

func (service *UserService) ChangePassword(user models.User, currentPassword string, newPassword string) error {
	if !security.VerifyPassword(currentPassword, user.HashedPassword) {
		return ErrIncorrectPassword
	}
	if currentPassword == newPassword {
		return ErrPasswordMustDiffer
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hashed, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHashPasswordFailed, err)
	}
	if err := service.users.UpdatePassword(user.ID, hashed); err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateUserFailed, err)
	}
	return nil
}

func (service *UserService) DeleteMe(user models.User) error {
	if user.IsAdmin {
		return ErrAdminSelfDelete
	}
	return service.DeleteUser(user.ID)
}

func (service *UserService) DeleteUser(userID uuid.UUID) error {
	if _, err := service.GetUser(userID); err != nil {
		return err
	}
	if err := service.users.DeleteAccountAndRelatedData(userID); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteUserFailed, err)
	}
	return nil
}

func (service *UserService) ensureEmailAvailable(email string, ownerID uuid.UUID) error {
	existing, err := service.users.FindByNormalizedEmail(email)
	switch {
	case err == nil:
		if existing.ID != ownerID {
			return ErrEmailTaken
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrEmailAvailabilityCheck, err)
	}
}
