package db

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) List(offset int, limit int) ([]models.User, int64, error) {
	count, err := repo.CountUsers()
	if err != nil {
		return nil, 0, err
	}

	users := make([]models.User, 0)
	if err := repo.database.
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

func (repo *UserRepository) FindByID(userID uuid.UUID) (models.User, error) {
	var user models.User
	if err := repo.database.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateColumns(user *models.User, columns []string) error {
	return repo.database.Model(user).Select(columns).Updates(user).Error
}

func (repo *UserRepository) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("hashed_password", hashedPassword).Error
}

func (repo *UserRepository) DeleteAccountAndRelatedData(userID uuid.UUID) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", userID).Delete(&models.Record{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", userID).Delete(&models.Habit{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&models.User{}).Error
	})
}
