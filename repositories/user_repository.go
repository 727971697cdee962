package repositories

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

type UserRepository struct {
	*Repository[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{newRepository[models.User](db, "User")}
}

// Authenticate loads the user with their roles and verifies the password
// against the stored bcrypt hash. A missing user and a wrong password are
// indistinguishable to the caller.
func (r *UserRepository) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := r.DB.Preload("Roles").Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}

	return &user, nil
}

// ExistsByUsername reports whether the username is already taken.
func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// CreateWithPassword hashes the plain-text password before inserting.
func (r *UserRepository) CreateWithPassword(user *models.User, password string) (*models.User, error) {
	if user == nil {
		return nil, ErrInvalidArgument
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := r.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
