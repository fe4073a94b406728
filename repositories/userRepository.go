package repositories

import (
	"errors"

	"github.com/silvaronna/marketplace-api/models"
	"gorm.io/gorm"
)

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if result := r.db.Find(&users); result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *gormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	result := r.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *gormUserRepository) Add(user models.User) (*models.User, error) {
	if result := r.db.Create(&user); result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *gormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *gormUserRepository) Delete(username string) (*models.User, error) {
	user, err := r.FindByUsername(username)
	if err != nil || user == nil {
		return nil, err
	}
	if result := r.db.Delete(user); result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}
